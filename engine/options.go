package engine

import (
	"fmt"
	"runtime"

	"github.com/Llucs/TurboZip/errs"
	"github.com/Llucs/TurboZip/internal/options"
	"github.com/Llucs/TurboZip/strategy"
)

// Config holds the resolved settings an Orchestrator or Reader runs with.
type Config struct {
	profile strategy.Profile
	threads int
	force   bool
	verbose bool
}

// NewConfig builds a Config with the package defaults (profile "balanced",
// thread count equal to the logical CPU count), then applies opts in
// order.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		profile: strategy.Balanced,
		threads: runtime.NumCPU(),
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Option is a functional option for configuring a Config.
type Option = options.Option[*Config]

// WithProfile sets the compression profile.
func WithProfile(profile string) Option {
	return options.New(func(c *Config) error {
		p, ok := strategy.ParseProfile(profile)
		if !ok {
			return fmt.Errorf("engine: invalid profile %q: %w", profile, errs.ErrUsageError)
		}
		c.profile = p
		return nil
	})
}

// WithThreads sets the worker count. A value <= 0 restores the default
// (logical CPU count).
func WithThreads(n int) Option {
	return options.NoError(func(c *Config) {
		if n <= 0 {
			n = runtime.NumCPU()
		}
		c.threads = n
	})
}

// WithForce allows overwriting an existing output path.
func WithForce(force bool) Option {
	return options.NoError(func(c *Config) {
		c.force = force
	})
}

// WithVerbose records whether verbose output is requested; Verbose reports
// it back. The engine's own Compress and Decompress print nothing.
func WithVerbose(verbose bool) Option {
	return options.NoError(func(c *Config) {
		c.verbose = verbose
	})
}

// Profile returns the configured profile.
func (c *Config) Profile() strategy.Profile { return c.profile }

// Threads returns the configured worker count.
func (c *Config) Threads() int { return c.threads }

// Force reports whether overwriting an existing output is allowed.
func (c *Config) Force() bool { return c.force }

// Verbose reports whether verbose diagnostics are enabled.
func (c *Config) Verbose() bool { return c.verbose }
