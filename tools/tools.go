// tools/tools.go
package tools

// This file is the single place built-in tools are added. Each tool
// package exposes a constructor returning a core.Module; the shell
// registers the returned list and keeps going past any module that
// fails or panics.

import (
	"automation-toolkit/config"
	"automation-toolkit/core"
	"automation-toolkit/history"
	"automation-toolkit/tools/folder_creator"
	"automation-toolkit/tools/renamer"
)

// Modules returns every built-in tool module in the order the shell
// lists them. journal may be nil when no history database could be
// opened; tools that use it degrade gracefully.
func Modules(cfg *config.Config, journal *history.Store) []core.Module {
	return []core.Module{
		renamer.New(cfg, journal),
		folder_creator.New(cfg),
	}
}
