// cmd/version.go
package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("automation-toolkit %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
		},
	}
}
