// Package config loads the settings shared by the fhirpath command and its
// HTTP server.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/damedic/fhirpath-go/fhirpath"
	"github.com/damedic/fhirpath-go/model"
)

// EnvPrefix is prepended to the environment variable of every key, e.g.
// FHIRPATH_SERVER_ADDR for server.addr.
const EnvPrefix = "FHIRPATH"

type Config struct {
	Release          string `mapstructure:"release"`
	Strict           bool   `mapstructure:"strict"`
	CheckOrdered     bool   `mapstructure:"check_ordered"`
	LogLevel         string `mapstructure:"log_level"`
	DecimalPrecision uint32 `mapstructure:"decimal_precision"`
	Server           Server `mapstructure:"server"`
	Limits           Limits `mapstructure:"limits"`
}

type Server struct {
	Addr      string `mapstructure:"addr"`
	CacheSize int    `mapstructure:"cache_size"`
	// BodyLimit caps request bodies, e.g. "1M" or "512K".
	BodyLimit string `mapstructure:"body_limit"`
}

type Limits struct {
	MaxDepth            int `mapstructure:"max_depth"`
	MaxRepeatIterations int `mapstructure:"max_repeat_iterations"`
}

// New returns a viper instance with defaults and environment binding set
// up. Command line flags are bound onto it by the caller before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("release", "R4")
	v.SetDefault("strict", false)
	v.SetDefault("check_ordered", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("decimal_precision", fhirpath.DefaultDecimalPrecision)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.cache_size", 256)
	v.SetDefault("server.body_limit", "1M")
	v.SetDefault("limits.max_depth", fhirpath.DefaultMaxDepth)
	v.SetDefault("limits.max_repeat_iterations", fhirpath.DefaultMaxRepeatIterations)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("fhirpath")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	return v
}

// Load reads the optional config file (an explicit path if file is set,
// otherwise fhirpath.yaml in the working directory) and decodes the
// settings.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values viper can not check while decoding.
func (c *Config) Validate() error {
	if _, err := model.ParseRelease(c.Release); err != nil {
		return err
	}
	if c.DecimalPrecision == 0 {
		return fmt.Errorf("decimal_precision must be positive")
	}
	if c.Server.CacheSize < 0 {
		return fmt.Errorf("server.cache_size must not be negative, got %d", c.Server.CacheSize)
	}
	if c.Limits.MaxDepth <= 0 || c.Limits.MaxRepeatIterations <= 0 {
		return fmt.Errorf("limits must be positive")
	}
	return nil
}

// ModelRelease returns the configured FHIR release.
func (c *Config) ModelRelease() model.Release {
	r, err := model.ParseRelease(c.Release)
	if err != nil {
		return model.R4{}
	}
	return r
}

// EvaluationOptions translates the settings into evaluation context options.
func (c *Config) EvaluationOptions(logger zerolog.Logger) []fhirpath.Option {
	return []fhirpath.Option{
		fhirpath.WithModel(c.ModelRelease()),
		fhirpath.WithStrictMode(c.Strict),
		fhirpath.WithCheckOrderedFunctions(c.CheckOrdered),
		fhirpath.WithDecimalContext(apd.BaseContext.WithPrecision(c.DecimalPrecision)),
		fhirpath.WithMaxDepth(c.Limits.MaxDepth),
		fhirpath.WithMaxRepeatIterations(c.Limits.MaxRepeatIterations),
		fhirpath.WithLogger(logger),
	}
}
