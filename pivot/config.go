package pivot

import (
	"github.com/rs/zerolog"

	"github.com/whatisor/BPA/bpaerr"
	"github.com/whatisor/BPA/geom"
)

// Config holds the engine's tunable, non-geometric parameters (spec §6:
// "Optional: comparison epsilon ε"). Zero value is not meaningful; build
// one with DefaultConfig and apply Options.
type Config struct {
	// Epsilon is the comparison epsilon used by the geometry kernel for
	// collinearity and degeneracy checks. Default geom.DefaultEpsilon (1e-7).
	Epsilon float64

	// Logger receives structured observability events (spec §6). Default
	// zerolog.Nop(): the engine performs no I/O of its own.
	Logger zerolog.Logger
}

// DefaultConfig returns a Config with spec-recommended defaults.
func DefaultConfig() Config {
	return Config{
		Epsilon: geom.DefaultEpsilon,
		Logger:  zerolog.Nop(),
	}
}

// Option configures a Config before Engine construction.
type Option func(*Config)

// WithEpsilon overrides the comparison epsilon.
func WithEpsilon(eps float64) Option {
	return func(c *Config) { c.Epsilon = eps }
}

// WithLogger wires an event sink for the structured events of spec §6.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// validate checks Config invariants after all Options have been applied.
func (c Config) validate() error {
	if c.Epsilon <= 0 {
		return bpaerr.ErrNonPositiveEpsilon
	}
	return nil
}
