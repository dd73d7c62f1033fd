// Package config loads settings for the oddity command from defaults, an
// optional YAML file and ODDITY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-oddity/decompose"
	"github.com/cwbudde/algo-oddity/detector"
	"github.com/cwbudde/algo-oddity/gp/kernel"
	"github.com/cwbudde/algo-oddity/internal/logging"
	"github.com/cwbudde/algo-oddity/series"
)

// Sentinel validation errors.
var (
	ErrInvalidTrendFraction = errors.New("trend fraction must be in (0, 1]")
	ErrInvalidDelimiter     = errors.New("delimiter must be a single character")
	ErrInvalidSkipRows      = errors.New("skip rows must be non-negative")
	ErrInvalidNoise         = errors.New("noise standard deviation must be non-negative")
)

const (
	envPrefix     = "ODDITY"
	configName    = "oddity"
	defaultColumn = "y"
	defaultLevel  = "info"
	defaultFormat = logging.FormatText
	defaultDelim  = ","
)

// Config holds every setting of the oddity command.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"   yaml:"logging"`
	Input     InputConfig     `mapstructure:"input"     yaml:"input"`
	Decompose DecomposeConfig `mapstructure:"decompose" yaml:"decompose"`
	Detector  DetectorConfig  `mapstructure:"detector"  yaml:"detector"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// InputConfig describes how series are read from CSV.
type InputConfig struct {
	Column    string `mapstructure:"column"    yaml:"column"`
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	SkipRows  int    `mapstructure:"skip_rows" yaml:"skip_rows"`
	Header    bool   `mapstructure:"header"    yaml:"header"`
}

// DecomposeConfig holds decomposition settings.
type DecomposeConfig struct {
	TrendFraction float64 `mapstructure:"trend_fraction" yaml:"trend_fraction"`
}

// DetectorConfig holds the two GP stages of the detector.
type DetectorConfig struct {
	Trend    StageConfig `mapstructure:"trend"    yaml:"trend"`
	Seasonal StageConfig `mapstructure:"seasonal" yaml:"seasonal"`
}

// StageConfig is the serialized form of a detector stage.
type StageConfig struct {
	Kernel         string  `mapstructure:"kernel"          yaml:"kernel"`
	LengthScale    float64 `mapstructure:"length_scale"    yaml:"length_scale"`
	SignalVariance float64 `mapstructure:"signal_variance" yaml:"signal_variance"`
	Period         float64 `mapstructure:"period"          yaml:"period"`
	NoiseStd       float64 `mapstructure:"noise_std"       yaml:"noise_std"`
}

// Load reads configuration from configPath, or from oddity.yaml in the
// working directory or $HOME/.config/oddity when configPath is empty. A
// missing default file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/oddity")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := v.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := v.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	def := detector.DefaultParams()
	return &Config{
		Logging: LoggingConfig{Level: defaultLevel, Format: defaultFormat},
		Input: InputConfig{
			Column:    defaultColumn,
			Delimiter: defaultDelim,
			Header:    true,
		},
		Decompose: DecomposeConfig{TrendFraction: decompose.DefaultTrendFraction},
		Detector: DetectorConfig{
			Trend:    stageConfig(def.Trend),
			Seasonal: stageConfig(def.Seasonal),
		},
	}
}

func stageConfig(s detector.Stage) StageConfig {
	return StageConfig{
		Kernel:         s.Kernel.Kind.String(),
		LengthScale:    s.Kernel.LengthScale,
		SignalVariance: s.Kernel.SignalVariance,
		Period:         s.Kernel.Period,
		NoiseStd:       s.NoiseStd,
	}
}

func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)

	v.SetDefault("input.column", def.Input.Column)
	v.SetDefault("input.delimiter", def.Input.Delimiter)
	v.SetDefault("input.skip_rows", def.Input.SkipRows)
	v.SetDefault("input.header", def.Input.Header)

	v.SetDefault("decompose.trend_fraction", def.Decompose.TrendFraction)

	setStageDefaults(v, "detector.trend", def.Detector.Trend)
	setStageDefaults(v, "detector.seasonal", def.Detector.Seasonal)
}

func setStageDefaults(v *viper.Viper, prefix string, s StageConfig) {
	v.SetDefault(prefix+".kernel", s.Kernel)
	v.SetDefault(prefix+".length_scale", s.LengthScale)
	v.SetDefault(prefix+".signal_variance", s.SignalVariance)
	v.SetDefault(prefix+".period", s.Period)
	v.SetDefault(prefix+".noise_std", s.NoiseStd)
}

// Validate checks every section.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: %q", logging.ErrInvalidFormat, c.Logging.Format)
	}

	if utf8.RuneCountInString(c.Input.Delimiter) > 1 {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, c.Input.Delimiter)
	}
	if c.Input.SkipRows < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSkipRows, c.Input.SkipRows)
	}

	if c.Decompose.TrendFraction <= 0 || c.Decompose.TrendFraction > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidTrendFraction, c.Decompose.TrendFraction)
	}

	if _, err := c.Detector.Params(); err != nil {
		return err
	}
	return nil
}

// CSVOptions converts the input section to series loader options.
func (c InputConfig) CSVOptions() *series.CSVOptions {
	opts := series.DefaultCSVOptions()
	if c.Column != "" {
		opts.ValueColumn = c.Column
	}
	if r, _ := utf8.DecodeRuneInString(c.Delimiter); r != utf8.RuneError {
		opts.Delimiter = r
	}
	opts.HasHeader = c.Header
	opts.SkipRows = c.SkipRows
	return opts
}

// Options converts the decompose section to decomposition options.
func (c DecomposeConfig) Options() []decompose.Option {
	return []decompose.Option{decompose.WithTrendFraction(c.TrendFraction)}
}

// Stage converts a stage config to detector parameters.
func (s StageConfig) Stage() (detector.Stage, error) {
	kind, err := kernel.ParseKind(s.Kernel)
	if err != nil {
		return detector.Stage{}, err
	}
	if s.NoiseStd < 0 {
		return detector.Stage{}, fmt.Errorf("%w: %g", ErrInvalidNoise, s.NoiseStd)
	}
	return detector.Stage{
		Kernel: kernel.Kernel{
			Kind:           kind,
			LengthScale:    s.LengthScale,
			SignalVariance: s.SignalVariance,
			Period:         s.Period,
		},
		NoiseStd: s.NoiseStd,
	}, nil
}

// Params converts both stages to detector parameters.
func (c DetectorConfig) Params() (detector.Params, error) {
	trend, err := c.Trend.Stage()
	if err != nil {
		return detector.Params{}, fmt.Errorf("detector.trend: %w", err)
	}
	seasonal, err := c.Seasonal.Stage()
	if err != nil {
		return detector.Params{}, fmt.Errorf("detector.seasonal: %w", err)
	}
	return detector.Params{Trend: trend, Seasonal: seasonal}, nil
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return out, nil
}
