// core/registry.go
package core

import (
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

// Entry is one registered tool as reported by Tools.
type Entry struct {
	ID   string
	Info ToolInfo
}

// Registry maps stable tool ids to their metadata and widget factories.
// It is filled once at startup via RegisterAll and only read afterwards,
// but it locks anyway so tools spawned into goroutines can query it.
type Registry struct {
	mu        sync.RWMutex
	infos     map[string]ToolInfo
	factories map[string]WidgetFactory
	order     []string
}

func NewRegistry() *Registry {
	return &Registry{
		infos:     make(map[string]ToolInfo),
		factories: make(map[string]WidgetFactory),
	}
}

// Register inserts a tool under id. Duplicate ids are rejected: the first
// registration wins and every later one gets ErrToolExists.
func (r *Registry) Register(id string, info ToolInfo, factory WidgetFactory) error {
	if id == "" {
		return ErrEmptyToolID
	}
	if info.Name == "" {
		return fmt.Errorf("%q: %w", id, ErrEmptyName)
	}
	if factory == nil {
		return fmt.Errorf("%q: %w", id, ErrNilFactory)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.infos[id]; exists {
		return fmt.Errorf("%q: %w", id, ErrToolExists)
	}
	r.infos[id] = info
	r.factories[id] = factory
	r.order = append(r.order, id)
	return nil
}

// Tools lists the registered tools in registration order. The slice is a
// copy; callers may reorder it freely.
func (r *Registry) Tools() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, Entry{ID: id, Info: r.infos[id]})
	}
	return entries
}

// Info returns the metadata registered under id.
func (r *Registry) Info(id string) (ToolInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.infos[id]
	return info, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.infos[id]
	return ok
}

// Len reports how many tools are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// CreateWidget looks up the factory for id and invokes it. A factory error
// comes back unchanged, and a factory panic is not recovered here; fencing
// off broken tools is the shell's job, so the registry stays a thin lookup.
func (r *Registry) CreateWidget(id string, win fyne.Window) (fyne.CanvasObject, error) {
	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrToolNotFound)
	}
	return factory(win)
}

// ModuleError records one module whose registration hook failed.
type ModuleError struct {
	ModuleID string
	Err      error
}

func (e ModuleError) Error() string {
	return fmt.Sprintf("module %q: %v", e.ModuleID, e.Err)
}

func (e ModuleError) Unwrap() error { return e.Err }

// RegisterAll runs every module's registration hook against reg. A failing
// or panicking hook only costs that module its spot; the rest still
// register. The returned slice holds one entry per skipped module and is
// nil when all of them made it in.
func RegisterAll(reg *Registry, modules []Module) []ModuleError {
	var failed []ModuleError
	for _, m := range modules {
		if id, err := runHook(reg, m); err != nil {
			failed = append(failed, ModuleError{ModuleID: id, Err: err})
		}
	}
	return failed
}

// runHook shields the population loop from a single broken module, panics
// included.
func runHook(reg *Registry, m Module) (id string, err error) {
	id = "<nil>"
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("registration hook panicked: %v", rec)
		}
	}()
	if m == nil {
		return id, errors.New("nil module")
	}
	id = m.ID()
	return id, m.Register(reg)
}
