// Package config provides configuration file support for the homology CLI
// and HTTP service: defaults, loading through viper or directly from YAML,
// environment interpolation and validation.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the full homology configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Env   string `yaml:"env" mapstructure:"env"`     // prod, dev, local (default: local)
	Level string `yaml:"level" mapstructure:"level"` // debug, info, warn, error (default: determined by env)
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string `yaml:"host" mapstructure:"host"`
	Port            int    `yaml:"port" mapstructure:"port"`
	ReadTimeoutSec  int    `yaml:"read_timeout_sec" mapstructure:"read_timeout_sec"`
	WriteTimeoutSec int    `yaml:"write_timeout_sec" mapstructure:"write_timeout_sec"`
	ShutdownSec     int    `yaml:"shutdown_timeout_sec" mapstructure:"shutdown_timeout_sec"`
	MaxBodyBytes    int64  `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// AnalysisConfig holds the default analysis parameters.
type AnalysisConfig struct {
	Radius       float64 `yaml:"radius" mapstructure:"radius"`
	Block        int     `yaml:"block" mapstructure:"block"`
	Workers      int     `yaml:"workers" mapstructure:"workers"`
	DarkCutoff   int     `yaml:"dark_cutoff" mapstructure:"dark_cutoff"`
	Connectivity int     `yaml:"connectivity" mapstructure:"connectivity"` // 4 or 8
	Split        bool    `yaml:"split" mapstructure:"split"`
	Format       string  `yaml:"format" mapstructure:"format"` // text or json
	MaxVertices  int     `yaml:"max_vertices" mapstructure:"max_vertices"`
	MaxSimplices int     `yaml:"max_simplices" mapstructure:"max_simplices"`
	MaxCells     int     `yaml:"max_cells" mapstructure:"max_cells"`     // image width×height
	TimeoutSec   int     `yaml:"timeout_sec" mapstructure:"timeout_sec"` // per analysis
}

// Defaults.
const (
	DefaultRadius       = 0.8
	DefaultBlock        = 20
	DefaultDarkCutoff   = 128
	DefaultConnectivity = 8
	DefaultPort         = 8080
	DefaultMaxBodyBytes = 8 << 20
	DefaultMaxVertices  = 2000
	DefaultMaxSimplices = 20000
	DefaultMaxCells     = 1 << 22
	DefaultTimeoutSec   = 30
)

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() *Config {
	cfg := &Config{Analysis: AnalysisConfig{Split: true}}
	cfg.ApplyDefaults()

	return cfg
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Logging.Env == "" {
		c.Logging.Env = "local"
	}
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ReadTimeoutSec <= 0 {
		c.Server.ReadTimeoutSec = 10
	}
	if c.Server.WriteTimeoutSec <= 0 {
		c.Server.WriteTimeoutSec = 30
	}
	if c.Server.ShutdownSec <= 0 {
		c.Server.ShutdownSec = 10
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Analysis.Radius == 0 {
		c.Analysis.Radius = DefaultRadius
	}
	if c.Analysis.Block == 0 {
		c.Analysis.Block = DefaultBlock
	}
	if c.Analysis.Workers == 0 {
		c.Analysis.Workers = 1
	}
	if c.Analysis.DarkCutoff == 0 {
		c.Analysis.DarkCutoff = DefaultDarkCutoff
	}
	if c.Analysis.Connectivity == 0 {
		c.Analysis.Connectivity = DefaultConnectivity
	}
	if c.Analysis.Format == "" {
		c.Analysis.Format = "text"
	}
	if c.Analysis.MaxVertices == 0 {
		c.Analysis.MaxVertices = DefaultMaxVertices
	}
	if c.Analysis.MaxSimplices == 0 {
		c.Analysis.MaxSimplices = DefaultMaxSimplices
	}
	if c.Analysis.MaxCells == 0 {
		c.Analysis.MaxCells = DefaultMaxCells
	}
	if c.Analysis.TimeoutSec == 0 {
		c.Analysis.TimeoutSec = DefaultTimeoutSec
	}
}

// Validate checks the configuration and reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []string

	switch c.Logging.Env {
	case "prod", "dev", "local", "docker":
	default:
		errs = append(errs, fmt.Sprintf("logging.env: unsupported environment %q (supported: prod, dev, local, docker)", c.Logging.Env))
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level: unsupported level %q", c.Logging.Level))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}

	if math.IsNaN(c.Analysis.Radius) || math.IsInf(c.Analysis.Radius, 0) || c.Analysis.Radius < 0 {
		errs = append(errs, fmt.Sprintf("analysis.radius: must be a finite non-negative number, got %g", c.Analysis.Radius))
	}
	if c.Analysis.Block < 1 {
		errs = append(errs, fmt.Sprintf("analysis.block: must be positive, got %d", c.Analysis.Block))
	}
	if c.Analysis.Workers < 1 {
		errs = append(errs, fmt.Sprintf("analysis.workers: must be positive, got %d", c.Analysis.Workers))
	}
	if c.Analysis.DarkCutoff < 1 || c.Analysis.DarkCutoff > 255 {
		errs = append(errs, fmt.Sprintf("analysis.dark_cutoff: must be between 1 and 255, got %d", c.Analysis.DarkCutoff))
	}
	if c.Analysis.Connectivity != 4 && c.Analysis.Connectivity != 8 {
		errs = append(errs, fmt.Sprintf("analysis.connectivity: must be 4 or 8, got %d", c.Analysis.Connectivity))
	}
	for _, f := range []struct {
		key string
		v   int
	}{
		{"analysis.max_vertices", c.Analysis.MaxVertices},
		{"analysis.max_simplices", c.Analysis.MaxSimplices},
		{"analysis.max_cells", c.Analysis.MaxCells},
		{"analysis.timeout_sec", c.Analysis.TimeoutSec},
	} {
		if f.v < 1 {
			errs = append(errs, fmt.Sprintf("%s: must be positive, got %d", f.key, f.v))
		}
	}
	if c.Analysis.Format != "text" && c.Analysis.Format != "json" {
		errs = append(errs, fmt.Sprintf("analysis.format: unsupported format %q (supported: text, json)", c.Analysis.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// Load reads configuration from the given viper instance on top of the
// defaults and returns a validated Config.
func Load(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	interpolate(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile reads a YAML config file on top of the defaults and returns
// a validated Config. ${VAR} and ${VAR:-default} are expanded first.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	data = []byte(InterpolateEnv(string(data)))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envVarPattern matches ${VAR} or ${VAR:-default} syntax.
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// InterpolateEnv replaces ${VAR} and ${VAR:-default} patterns in s with the
// corresponding environment variable values. Unset variables without a
// default are left untouched.
func InterpolateEnv(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		if val, ok := os.LookupEnv(parts[1]); ok {
			return val
		}
		if parts[2] != "" {
			return parts[2]
		}

		return match
	})
}

func interpolate(cfg *Config) {
	cfg.Logging.Env = InterpolateEnv(cfg.Logging.Env)
	cfg.Logging.Level = InterpolateEnv(cfg.Logging.Level)
	cfg.Server.Host = InterpolateEnv(cfg.Server.Host)
	cfg.Analysis.Format = InterpolateEnv(cfg.Analysis.Format)
}

// GenerateTemplate returns the default configuration as YAML, suitable for
// writing to a .homology.yaml file.
func GenerateTemplate() (string, error) {
	out, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}

	return "# homology configuration\n" + string(out), nil
}
