// Package module wires the detect service into the module registry.
package module

import (
	"net/http"

	"watchdog/internal/modkit"
	"watchdog/internal/modkit/httpkit"
	"watchdog/internal/services/detect/domain"
	"watchdog/internal/services/detect/service"
)

// Ports exposed by the detect module.
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module.
type Module struct {
	deps     modkit.Deps
	ports    Ports
	defaults domain.Options
}

// New constructs the detect module. Environment configuration supplies the
// default options; callers merge their own overrides on top per run.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	modkit.Build(append([]modkit.Option{
		modkit.WithName("detect"),
	}, opts...)...)

	return &Module{
		deps:     deps,
		ports:    Ports{Runner: service.New()},
		defaults: FromConfig(deps.Cfg),
	}
}

// Defaults returns the environment-derived option defaults.
func (m *Module) Defaults() domain.Options { return m.defaults }

// Name satisfies modkit.Module
func (m *Module) Name() string { return "detect" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes satisfies modkit.Module; detection is exposed over HTTP by
// the api service, not here.
func (m *Module) MountRoutes(_ httpkit.Router) {}
