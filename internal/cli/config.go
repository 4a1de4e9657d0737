package cli

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/doctran/archdiag/pkg/errors"
	"github.com/doctran/archdiag/pkg/pipeline"
)

const defaultConfigFile = "archdiag.toml"

// Config is the contents of archdiag.toml.
//
//	output  = "."
//	formats = ["png", "svg"]
//	flat    = false
//
//	[graph_attr]
//	bgcolor = "transparent"
//
//	[cache]
//	redis_url = "redis://ci-cache:6379/0"
//	ttl       = "168h"
//
//	[server]
//	addr = "127.0.0.1:8080"
type Config struct {
	Output    string            `toml:"output"`
	Formats   []string          `toml:"formats"`
	Flat      bool              `toml:"flat"`
	GraphAttr map[string]string `toml:"graph_attr"`
	Cache     CacheConfig       `toml:"cache"`
	Server    ServerConfig      `toml:"server"`
}

// CacheConfig configures the render cache.
type CacheConfig struct {
	Dir      string `toml:"dir"`
	RedisURL string `toml:"redis_url"`
	TTL      string `toml:"ttl"`
	Disabled bool   `toml:"disabled"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Output:  ".",
		Formats: []string{pipeline.DefaultFormat},
	}
}

// LoadConfig reads the TOML file at path over the defaults. A missing file
// is an error only when explicit is set.
func LoadConfig(path string, explicit bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges the TOML decoder cannot.
func (c Config) Validate() error {
	for i, f := range c.Formats {
		c.Formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	if err := pipeline.ValidateFormats(c.Formats); err != nil {
		return err
	}
	if _, err := c.Cache.ttl(); err != nil {
		return err
	}
	return nil
}

// ttl parses the cache TTL; empty means the cache default.
func (c CacheConfig) ttl() (time.Duration, error) {
	if c.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil || d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "invalid cache ttl %q", c.TTL)
	}
	return d, nil
}

// pipelineOptions converts the config into pipeline options.
func (c Config) pipelineOptions() pipeline.Options {
	ttl, _ := c.Cache.ttl()
	return pipeline.Options{
		Formats:   c.Formats,
		OutputDir: c.Output,
		Flat:      c.Flat,
		GraphAttr: c.GraphAttr,
		TTL:       ttl,
	}
}
