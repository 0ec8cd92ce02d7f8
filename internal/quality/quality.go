// Package quality maps the externally controlled quality tier to the
// bundle of feature flags and numeric parameters the renderers consume.
// The preset table is built once at process start, is immutable afterwards
// and is safe for concurrent reads from any number of renderer instances.
package quality

import "github.com/tejashwikalptaru/soundscape/internal/domain"

// Config is the immutable per-tier configuration record. A renderer holds
// the active config by pointer and swaps it as a whole unit on tier
// change; individual fields are never mutated after construction.
type Config struct {
	Tier domain.QualityTier

	// Feature flags
	UseGlow      bool
	UseEdge      bool
	UseHighlight bool
	UseShadow    bool
	UseMarkers   bool

	// Bucket limits
	MaxBarCount     int // cap on spectrum buckets
	OverlayBarCount int // reduced bucket count in overlay mode

	// Smoothing
	Smoothing float64 // generic per-frame blend factor
	Attack    float64 // meter ballistics, rising values
	Release   float64 // meter ballistics, falling values

	// Entity pools
	ParticleCap      int     // starfield pool capacity
	SpawnRate        float64 // accumulator growth per unit energy per second
	MaxSpawnPerTick  int     // spawn burst cap per frame
	GlitchMaxSegs    int     // glitch segment pool capacity
	GlitchThreshold  float64 // driving value a segment spawn must exceed
	GlitchMaxOffset  float64 // max horizontal displacement in pixels
	GlitchJitterProb float64 // per-frame chance a segment re-rolls its offset

	// Peak behavior
	PeakHold    float64 // seconds a peak holds before decaying
	PeakDecay   float64 // exponential decay rate per second (LED)
	PeakGravity float64 // fall acceleration in value units/s^2 (meter)
	PeakDamping float64 // velocity damping per second (meter)

	// Cosmetics
	GlowRadius   float64
	GlowPasses   int
	AlphaFactor  float64
	MinMagnitude float64 // culling threshold for near-silent buckets
}

// presets is the process-wide table, one immutable config per tier.
var presets = map[domain.QualityTier]*Config{
	domain.QualityLow: {
		Tier:             domain.QualityLow,
		MaxBarCount:      32,
		OverlayBarCount:  16,
		Smoothing:        0.35,
		Attack:           0.6,
		Release:          0.15,
		ParticleCap:      120,
		SpawnRate:        40,
		MaxSpawnPerTick:  4,
		GlitchMaxSegs:    6,
		GlitchThreshold:  0.5,
		GlitchMaxOffset:  24,
		GlitchJitterProb: 0.1,
		PeakHold:         0.6,
		PeakDecay:        2.5,
		PeakGravity:      3.2,
		PeakDamping:      0.8,
		AlphaFactor:      0.85,
		MinMagnitude:     0.01,
	},
	domain.QualityMedium: {
		Tier:             domain.QualityMedium,
		UseEdge:          true,
		UseMarkers:       true,
		MaxBarCount:      64,
		OverlayBarCount:  24,
		Smoothing:        0.3,
		Attack:           0.6,
		Release:          0.15,
		ParticleCap:      240,
		SpawnRate:        80,
		MaxSpawnPerTick:  6,
		GlitchMaxSegs:    10,
		GlitchThreshold:  0.5,
		GlitchMaxOffset:  40,
		GlitchJitterProb: 0.15,
		PeakHold:         0.6,
		PeakDecay:        2.5,
		PeakGravity:      3.2,
		PeakDamping:      0.8,
		GlowRadius:       4,
		GlowPasses:       2,
		AlphaFactor:      0.9,
		MinMagnitude:     0.008,
	},
	domain.QualityHigh: {
		Tier:             domain.QualityHigh,
		UseGlow:          true,
		UseEdge:          true,
		UseHighlight:     true,
		UseShadow:        true,
		UseMarkers:       true,
		MaxBarCount:      96,
		OverlayBarCount:  32,
		Smoothing:        0.25,
		Attack:           0.6,
		Release:          0.15,
		ParticleCap:      480,
		SpawnRate:        140,
		MaxSpawnPerTick:  8,
		GlitchMaxSegs:    16,
		GlitchThreshold:  0.5,
		GlitchMaxOffset:  64,
		GlitchJitterProb: 0.2,
		PeakHold:         0.6,
		PeakDecay:        2.5,
		PeakGravity:      3.2,
		PeakDamping:      0.8,
		GlowRadius:       8,
		GlowPasses:       3,
		AlphaFactor:      1.0,
		MinMagnitude:     0.005,
	},
}

// Select returns the configuration for the given tier. Unrecognized tiers
// fall back to the medium configuration rather than failing.
func Select(tier domain.QualityTier) *Config {
	if cfg, ok := presets[tier]; ok {
		return cfg
	}
	return presets[domain.QualityMedium]
}

// BarCount resolves the effective bucket count for the config given the
// host-requested count and overlay mode. The result is always positive
// and never exceeds the tier's cap.
func (c *Config) BarCount(requested int, overlay bool) int {
	limit := c.MaxBarCount
	if overlay {
		limit = c.OverlayBarCount
	}
	if requested <= 0 || requested > limit {
		return limit
	}
	return requested
}
