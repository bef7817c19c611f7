// cmd/gui.go
package cmd

import (
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"automation-toolkit/config"
	"automation-toolkit/core"
	"automation-toolkit/history"
	"automation-toolkit/logging"
	"automation-toolkit/tools"
	"automation-toolkit/ui"
)

// runGUI wires config, logging, the history journal and every built-in
// module together, then hands the registry to the shell. A module that
// fails to register is logged and skipped; the shell opens regardless.
func runGUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logging.Init(cfg.LogDir, cfg.Debug); err != nil {
		return err
	}
	defer logging.Sync()
	log := logging.L()

	journal, err := history.Open(cfg.HistoryPath())
	if err != nil {
		log.Warn("history journal unavailable, undo disabled", zap.Error(err))
		journal = nil
	} else {
		defer journal.Close()
	}

	reg := core.NewRegistry()
	for _, me := range core.RegisterAll(reg, tools.Modules(cfg, journal)) {
		log.Error("module skipped", zap.String("module", me.ModuleID), zap.Error(me.Err))
	}
	log.Info("tools registered", zap.Int("count", reg.Len()))

	a := app.NewWithID("com.autokit.toolkit")
	shell := ui.NewShell(a, cfg, reg)
	shell.Window().ShowAndRun()
	return nil
}
