// cmd/mkdirs.go
package cmd

import (
	"github.com/spf13/cobra"

	"automation-toolkit/config"
	"automation-toolkit/logging"
	"automation-toolkit/tools/folder_creator"
)

func mkdirsCmd() *cobra.Command {
	var opts folder_creator.Options

	cmd := &cobra.Command{
		Use:   "mkdirs --parent DIR --count N [flags]",
		Short: "Create a numbered folder batch without the GUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := logging.Init(cfg.LogDir, cfg.Debug); err != nil {
				return err
			}
			defer logging.Sync()

			w := folder_creator.NewWorker(opts)
			w.OnLog = func(line string) { cmd.Println(line) }

			n, err := w.Run(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("%d folders in place.\n", n)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Parent, "parent", "", "parent folder (required)")
	f.IntVar(&opts.Count, "count", 0, "number of folders (required)")
	f.StringVar(&opts.Prefix, "prefix", "test", "folder name prefix")
	f.StringVar(&opts.Suffix, "suffix", "batch", "folder name suffix")
	f.IntVar(&opts.Padding, "padding", 4, "zero padding width")
	f.IntVar(&opts.Start, "start-index", 1, "first index value")
	_ = cmd.MarkFlagRequired("parent")
	_ = cmd.MarkFlagRequired("count")
	return cmd
}
