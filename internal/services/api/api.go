// Package api provides the HTTP API for the application
package api

import (
	"watchdog/internal/platform/config"
	"watchdog/internal/platform/logger"
	phttp "watchdog/internal/platform/net/http"

	"watchdog/internal/modkit"
	"watchdog/internal/modkit/httpkit"
	"watchdog/internal/modkit/module"

	apidetect "watchdog/internal/services/api/detect/module"
	metamod "watchdog/internal/services/api/meta/module"
	detectmod "watchdog/internal/services/detect/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}

	// Construct the detect worker module first and extract its runner port
	detect := detectmod.New(deps)
	runner := detect.Ports().(detectmod.Ports).Runner

	mods := []module.Module{
		metamod.New(deps),
		detect, // include worker so its ports are registered
		apidetect.New(deps, modkit.WithPorts(apidetect.Ports{
			Runner:   runner,
			Defaults: detect.Defaults(),
		})),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
