package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/alexanderramin/regwise/internal/catalog"
	"github.com/alexanderramin/regwise/internal/domain"
	"github.com/alexanderramin/regwise/internal/scheduler"
)

// EnvPrefix prefixes every environment override. Nested keys use "__":
// REGWISE_CREDITS__TARGET=16 sets credits.target.
const EnvPrefix = "REGWISE_"

type Config struct {
	DB       DBConfig       `json:"db"`
	Log      LogConfig      `json:"log"`
	Credits  CreditsConfig  `json:"credits"`
	Assembly AssemblyConfig `json:"assembly"`
	Catalog  CatalogConfig  `json:"catalog"`
}

type DBConfig struct {
	// Path is the SQLite file holding catalog snapshots.
	Path string `json:"path"`
}

type LogConfig struct {
	Enabled bool   `json:"enabled"`
	Level   string `json:"level"`
}

// CreditsConfig is the default credit policy for plan requests.
type CreditsConfig struct {
	Min    float64 `json:"min"`
	Target float64 `json:"target"`
	Max    float64 `json:"max"`
}

type AssemblyConfig struct {
	MaxFillAttempts int `json:"max_fill_attempts"`
	MaxCombinations int `json:"max_combinations"`
	MaxSearchNodes  int `json:"max_search_nodes"`
}

type CatalogConfig struct {
	FillerLimit   int    `json:"filler_limit"`
	NoPrereqLimit int    `json:"no_prereq_limit"`
	SubjectLimit  int    `json:"subject_limit"`
	LongKeyPrefix string `json:"long_key_prefix"`
}

// Default returns the built-in configuration.
func Default() Config {
	limits := scheduler.DefaultLimits()
	opts := catalog.DefaultOptions()
	return Config{
		Log: LogConfig{Level: "info"},
		Credits: CreditsConfig{
			Min:    domain.DefaultMinCredits,
			Target: domain.DefaultTargetCredits,
			Max:    domain.DefaultMaxCredits,
		},
		Assembly: AssemblyConfig{
			MaxFillAttempts: limits.MaxFillAttempts,
			MaxCombinations: limits.MaxCombinations,
			MaxSearchNodes:  limits.MaxSearchNodes,
		},
		Catalog: CatalogConfig{
			FillerLimit:   opts.FillerLimit,
			NoPrereqLimit: opts.NoPrereqLimit,
			SubjectLimit:  opts.SubjectLimit,
			LongKeyPrefix: scheduler.DefaultLongPrefix,
		},
	}
}

// Load reads an optional YAML or JSON file, then applies REGWISE_ environment
// overrides on top of the defaults. An empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.SetDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

// envKey maps REGWISE_ASSEMBLY__MAX_FILL_ATTEMPTS to assembly.max_fill_attempts.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// SetDefaults fills settings that have no useful zero value.
func (c *Config) SetDefaults() error {
	if c.DB.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		c.DB.Path = filepath.Join(home, ".regwise", "regwise.db")
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Catalog.LongKeyPrefix == "" {
		c.Catalog.LongKeyPrefix = scheduler.DefaultLongPrefix
	}
	return nil
}

// Validate rejects inverted credit policies and non-positive budgets.
func (c Config) Validate() error {
	cr := c.Credits
	if cr.Min < 0 || cr.Target < 0 || cr.Max < 0 {
		return fmt.Errorf("credits: values must not be negative")
	}
	if cr.Min > cr.Target {
		return fmt.Errorf("credits.min (%g) exceeds credits.target (%g)", cr.Min, cr.Target)
	}
	if cr.Max > 0 && cr.Target > cr.Max {
		return fmt.Errorf("credits.target (%g) exceeds credits.max (%g)", cr.Target, cr.Max)
	}
	budgets := []struct {
		name  string
		value int
	}{
		{"assembly.max_fill_attempts", c.Assembly.MaxFillAttempts},
		{"assembly.max_combinations", c.Assembly.MaxCombinations},
		{"assembly.max_search_nodes", c.Assembly.MaxSearchNodes},
		{"catalog.filler_limit", c.Catalog.FillerLimit},
		{"catalog.no_prereq_limit", c.Catalog.NoPrereqLimit},
		{"catalog.subject_limit", c.Catalog.SubjectLimit},
	}
	for _, b := range budgets {
		if b.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", b.name, b.value)
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: unknown level %q", l.Level)
	}
	return level, nil
}

func (c Config) Limits() scheduler.Limits {
	return scheduler.Limits{
		MaxFillAttempts: c.Assembly.MaxFillAttempts,
		MaxCombinations: c.Assembly.MaxCombinations,
		MaxSearchNodes:  c.Assembly.MaxSearchNodes,
	}
}

func (c Config) CatalogOptions() catalog.Options {
	opts := catalog.DefaultOptions()
	opts.FillerLimit = c.Catalog.FillerLimit
	opts.NoPrereqLimit = c.Catalog.NoPrereqLimit
	opts.SubjectLimit = c.Catalog.SubjectLimit
	return opts
}

// Constraints returns the default request constraints under this credit policy.
func (c Config) Constraints() domain.Constraints {
	dc := domain.DefaultConstraints()
	dc.MinCredits = c.Credits.Min
	dc.TargetCredits = c.Credits.Target
	dc.MaxCredits = c.Credits.Max
	return dc
}
