package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"watchdog/internal/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		bi := version.Info()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n",
			bi.Service, bi.Version, bi.Commit, bi.Date)
	},
}
