// cmd/rename.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"automation-toolkit/config"
	"automation-toolkit/history"
	"automation-toolkit/logging"
	"automation-toolkit/tools/renamer"
)

func renameCmd() *cobra.Command {
	var opts renamer.Options
	var mode string

	cmd := &cobra.Command{
		Use:   "rename --folder DIR [flags]",
		Short: "Rename files in a folder without the GUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := logging.Init(cfg.LogDir, cfg.Debug); err != nil {
				return err
			}
			defer logging.Sync()

			switch mode {
			case string(renamer.ModeNewName):
				opts.Mode = renamer.ModeNewName
			case string(renamer.ModeKeepName):
				opts.Mode = renamer.ModeKeepName
			default:
				return fmt.Errorf("unknown mode %q (want %s or %s)",
					mode, renamer.ModeNewName, renamer.ModeKeepName)
			}

			var journal *history.Store
			if !opts.DryRun {
				journal, err = history.Open(cfg.HistoryPath())
				if err != nil {
					logging.L().Warn("history journal unavailable, undo disabled", zap.Error(err))
				} else {
					defer journal.Close()
				}
			}

			w := renamer.NewWorker(opts, journal)
			w.OnLog = func(line string) { cmd.Println(line) }

			sum, err := w.Run(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("Processed %d/%d files.\n", sum.Processed, sum.Total)
			if sum.BatchID != "" {
				cmd.Println("Undo batch:", sum.BatchID)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Folder, "folder", "", "folder to scan (required)")
	f.StringVar(&opts.Pattern, "pattern", "*.bmp", "file pattern")
	f.StringVar(&mode, "mode", string(renamer.ModeNewName), "naming mode: new_name or keep_name")
	f.IntVar(&opts.IndexBase, "index-base", 1, "first index value")
	f.IntVar(&opts.PadWidth, "pad-width", 4, "zero padding width (0 disables)")
	f.Float64Var(&opts.IndexMul, "index-mul", 1.0, "index multiplier")
	f.IntVar(&opts.IndexOffset, "index-offset", 0, "index offset")
	f.StringVar(&opts.Prefix, "prefix", "frame", "name prefix")
	f.StringVar(&opts.Postfix, "postfix", "", "name postfix")
	f.BoolVar(&opts.ApplySelection, "apply-selection", false, "apply the selection rule")
	f.IntVar(&opts.SelOffset, "sel-offset", 0, "selection offset")
	f.IntVar(&opts.SelDivision, "sel-division", 0, "selection division")
	f.BoolVar(&opts.ResetPerFolder, "reset-per-folder", false, "restart the index in every folder")
	f.StringVar(&opts.DestRoot, "dest-root", "", "write results under this folder instead of in place")
	f.BoolVar(&opts.PreserveTree, "preserve-tree", false, "mirror the folder structure under --dest-root")
	f.BoolVar(&opts.Move, "move", false, "move instead of copy")
	f.BoolVar(&opts.Overwrite, "overwrite", false, "overwrite existing files")
	f.BoolVar(&opts.DryRun, "dry-run", false, "log the plan without touching files")
	f.BoolVar(&opts.Verbose, "verbose", false, "log every file")
	_ = cmd.MarkFlagRequired("folder")
	return cmd
}
