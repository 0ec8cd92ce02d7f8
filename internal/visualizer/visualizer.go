package visualizer

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
	"github.com/tejashwikalptaru/soundscape/internal/rng"
)

// Style identifies one renderer style.
type Style string

// Available styles.
const (
	StyleBars      Style = "bars"
	StyleGlitch    Style = "glitch"
	StyleCircular  Style = "circular"
	StyleStarfield Style = "starfield"
	StyleSpheres   Style = "spheres"
	StyleCubes     Style = "cubes"
	StyleLEDPanel  Style = "led_panel"
	StyleLoudness  Style = "loudness"
	StyleNeonWave  Style = "neon_wave"
)

// Options carries the constructor-injected dependencies of a renderer.
type Options struct {
	// Logger receives per-frame failure reports. Required.
	Logger *slog.Logger

	// Rand is the random source for entity spawning. A nil Rand gets a
	// time-independent default seed, which keeps demos reproducible.
	Rand ports.Rand

	// Quality selects the initial tier.
	Quality domain.QualityTier

	// Params is the host-decided bar layout.
	Params domain.RenderParams

	// BaseColor themes the effect; nil selects the default accent.
	BaseColor color.Color
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Rand == nil {
		o.Rand = rng.New(1)
	}
	if o.Params.BarCount == 0 {
		o.Params = domain.DefaultRenderParams()
	}
	return o
}

// Info describes a registered style for display purposes.
type Info struct {
	Style Style
	Name  string
}

// Registry builds renderers by style. It is a plain instance owned by the
// host composition root; nothing in this package is a process-wide
// singleton.
type Registry struct {
	order    []Info
	builders map[Style]func(Options) ports.Renderer
}

// NewRegistry creates a registry with all built-in styles registered.
func NewRegistry() *Registry {
	r := &Registry{builders: make(map[Style]func(Options) ports.Renderer)}

	r.register(StyleBars, "Spectrum Bars", func(o Options) ports.Renderer { return NewBars(o) })
	r.register(StyleGlitch, "Glitch", func(o Options) ports.Renderer { return NewGlitch(o) })
	r.register(StyleCircular, "Circular Bars", func(o Options) ports.Renderer { return NewCircular(o) })
	r.register(StyleStarfield, "Starfield", func(o Options) ports.Renderer { return NewStarfield(o) })
	r.register(StyleSpheres, "Spheres", func(o Options) ports.Renderer { return NewSpheres(o) })
	r.register(StyleCubes, "Cubes", func(o Options) ports.Renderer { return NewCubes(o) })
	r.register(StyleLEDPanel, "LED Panel", func(o Options) ports.Renderer { return NewLEDPanel(o) })
	r.register(StyleLoudness, "Loudness Meter", func(o Options) ports.Renderer { return NewLoudness(o) })
	r.register(StyleNeonWave, "Neon Wave", func(o Options) ports.Renderer { return NewNeonWave(o) })

	return r
}

func (r *Registry) register(style Style, name string, build func(Options) ports.Renderer) {
	r.order = append(r.order, Info{Style: style, Name: name})
	r.builders[style] = build
}

// New builds a renderer of the given style.
func (r *Registry) New(style Style, opts Options) (ports.Renderer, error) {
	build, ok := r.builders[style]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStyle, style)
	}
	return build(opts.withDefaults()), nil
}

// Styles lists the registered styles in registration order.
func (r *Registry) Styles() []Info {
	out := make([]Info, len(r.order))
	copy(out, r.order)
	return out
}

// Next returns the style following the given one, wrapping around. Used
// by hosts that cycle styles on user input. Unknown styles start over at
// the first registered style.
func (r *Registry) Next(style Style) Style {
	for i, info := range r.order {
		if info.Style == style {
			return r.order[(i+1)%len(r.order)].Style
		}
	}
	return r.order[0].Style
}
