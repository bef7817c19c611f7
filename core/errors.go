// core/errors.go
package core

import "errors"

var (
	// ErrEmptyToolID is returned when a tool registers with an empty id.
	ErrEmptyToolID = errors.New("tool id cannot be empty")

	// ErrEmptyName is returned when a tool registers without a display name.
	ErrEmptyName = errors.New("tool name cannot be empty")

	// ErrNilFactory is returned when a tool registers without a widget factory.
	ErrNilFactory = errors.New("tool has no widget factory")

	// ErrToolExists is returned when an id is registered a second time.
	// The first registration stays in place.
	ErrToolExists = errors.New("tool already registered")

	// ErrToolNotFound is returned when a lookup names an unknown id.
	ErrToolNotFound = errors.New("tool not found")
)
