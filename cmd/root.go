// cmd/root.go
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "automation-toolkit",
	Short: "Desktop toolbox for batch file automation",
	Long: `Automation Toolkit bundles small file automation tools behind one
shell window: batch renaming with preview and undo, numbered folder
batches, and a headless CLI for the same pipelines.

Run without arguments to open the GUI shell.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGUI()
	},
}

func init() {
	rootCmd.AddCommand(renameCmd())
	rootCmd.AddCommand(mkdirsCmd())
	rootCmd.AddCommand(versionCmd())
}

// Execute runs the root command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
