// Package module wires the detect endpoints into the API
package module

import (
	"net/http"

	modkit "watchdog/internal/modkit"
	"watchdog/internal/modkit/httpkit"
	str "watchdog/internal/platform/strings"

	detecthttp "watchdog/internal/services/api/detect/http"
	"watchdog/internal/services/detect/domain"
)

// Ports consumed by this module
type Ports struct {
	Runner   domain.RunnerPort
	Defaults domain.Options
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)
}

// New constructs the API detect module. Callers inject the runner port via
// modkit.WithPorts(Ports{...}).
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("detect"),
		modkit.WithPrefix("/detect"),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Runner == nil {
		panic("api detect module: expected WithPorts(detect/module.Ports) with a Runner")
	}

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		detecthttp.Register(r, detecthttp.Deps{
			Runner:   ports.Runner,
			Defaults: ports.Defaults,
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "detect") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
