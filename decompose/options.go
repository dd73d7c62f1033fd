package decompose

// DefaultTrendFraction is the moving-average window as a fraction of the
// series length.
const DefaultTrendFraction = 0.2

// Config holds decomposition settings.
type Config struct {
	TrendFraction float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{TrendFraction: DefaultTrendFraction}
}

// WithTrendFraction sets the moving-average window fraction. Values outside
// (0, 1] are ignored.
func WithTrendFraction(fraction float64) Option {
	return func(cfg *Config) {
		if fraction > 0 && fraction <= 1 {
			cfg.TrendFraction = fraction
		}
	}
}

func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Window returns the trend window for a series of length n.
func (c Config) Window(n int) int {
	return int(c.TrendFraction * float64(n))
}
