package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"watchdog/internal/core/version"
	perr "watchdog/internal/platform/errors"
)

var rootCmd = &cobra.Command{
	Use:   "watchdog",
	Short: "Cost and metric anomaly detection over CSV time series",
	Long: "Watchdog ingests timestamped CSV measurements, builds trailing-window\n" +
		"baselines per group, and reports spikes, drops, drifts, and new groups.",
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = version.Info().Version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "watchdog:", err)
		if _, ok := perr.As(err); ok {
			os.Exit(perr.ExitCode(err))
		}
		// anything uncoded at this point is a flag or argument parse error
		os.Exit(perr.ExitUsage)
	}
}
