package main

import (
	"github.com/spf13/cobra"

	"watchdog/internal/platform/config"
	perr "watchdog/internal/platform/errors"
	"watchdog/internal/platform/logger"
	phttp "watchdog/internal/platform/net/http"

	"watchdog/internal/services/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve exposes detection over HTTP: POST /api/v1/detect/run accepts
inline CSV plus options and returns the same result document the CLI
renders. The server reads CORE_API_* environment variables for its
address and port.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	if err := srv.Run(cmd.Context()); err != nil {
		return perr.Wrap(err, perr.ErrorCodeInternal, "http server stopped")
	}
	return nil
}
