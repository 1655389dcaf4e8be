// Package config loads the skemalab CLI configuration.
//
// The file is YAML. It is read with skemalab's own YAML source and validated
// by a schema built with the dsl package, so a bad config file is reported
// with the same issue paths and messages as a bad lesson input.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/reoring/skemalab"
	g "github.com/reoring/skemalab/dsl"
	"github.com/reoring/skemalab/i18n"
	"github.com/reoring/skemalab/swapi"
)

// Environment variables consulted by Load.
const (
	EnvConfig   = "SKEMALAB_CONFIG"
	EnvSWAPIURL = "SKEMALAB_SWAPI_URL"
	EnvLang     = "SKEMALAB_LANG"
)

// ErrInvalidValue is returned when an environment override is rejected.
var ErrInvalidValue = errors.New("invalid config value")

// SWAPI configures the client used by the fetch commands.
type SWAPI struct {
	BaseURL  string        `yaml:"base_url" skemalab:"name=base_url"`
	Timeout  time.Duration `yaml:"timeout" skemalab:"name=timeout"`
	MaxBytes int64         `yaml:"max_bytes" skemalab:"name=max_bytes"`
}

// Log selects the logger level and output format.
type Log struct {
	Level  string `yaml:"level" skemalab:"name=level"`
	Format string `yaml:"format" skemalab:"name=format"`
}

// Config contains configuration for the skemalab CLI.
type Config struct {
	Language string `yaml:"language" skemalab:"name=language"`
	SWAPI    SWAPI  `yaml:"swapi" skemalab:"name=swapi"`
	Log      Log    `yaml:"log" skemalab:"name=log"`

	// path is the file this config was loaded from, empty for defaults.
	path string
}

// Default returns the built-in configuration.
func Default() *Config {
	def := swapi.DefaultConfig()
	return &Config{
		Language: "en",
		SWAPI: SWAPI{
			BaseURL:  def.BaseURL,
			Timeout:  def.Timeout,
			MaxBytes: def.MaxBytes,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

var durationSchema = g.TransformErr[string, time.Duration](g.String(), func(_ context.Context, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", d)
	}
	return d, nil
})

var languageSchema = g.Enum(i18n.Languages()...)

var swapiSchema = g.MustBind[SWAPI](g.Object().
	Field("base_url", g.StringOf[string](g.String().URL())).Optional().
	Field("timeout", g.SchemaOf(durationSchema)).Optional().
	Field("max_bytes", g.NumberOf[int64](g.Number().Positive())).Optional().
	UnknownStrict())

var logSchema = g.MustBind[Log](g.Object().
	Field("level", g.SchemaOf(g.Enum("debug", "info", "warn", "error"))).Optional().
	Field("format", g.SchemaOf(g.Enum("text", "json"))).Optional().
	UnknownStrict())

// fileSchema describes the whole document. Unknown keys are errors so typos
// do not go unnoticed.
var fileSchema = g.MustBind[Config](g.Object().
	Field("language", g.SchemaOf(languageSchema)).Optional().
	Field("swapi", g.SchemaOf(swapiSchema)).Optional().
	Field("log", g.SchemaOf(logSchema)).Optional().
	UnknownStrict())

// DefaultPath returns the per-user config file: <UserConfigDir>/skemalab/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "skemalab", "config.yaml")
}

// Load reads the configuration. An explicit path (or $SKEMALAB_CONFIG) must
// exist; the default path may be missing, in which case defaults are used.
// Environment overrides are applied last.
func Load(ctx context.Context, path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path, explicit = DefaultPath(), false
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		case err != nil:
			return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
		default:
			fc, err := Parse(ctx, data)
			if err != nil {
				return nil, fmt.Errorf("invalid config file %s: %w", path, err)
			}
			cfg.merge(fc)
			cfg.path = path
		}
	}

	if err := cfg.applyEnv(ctx); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse validates a YAML document. Keys left out are zero in the result.
func Parse(ctx context.Context, data []byte) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &Config{}, nil
	}
	opt := skemalab.ParseOpt{
		Strictness: skemalab.Strictness{OnDuplicateKey: skemalab.Error},
		MaxDepth:   8,
	}
	c, err := skemalab.ParseFrom(ctx, fileSchema, skemalab.YAMLBytes(data), opt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) merge(o *Config) {
	if o.Language != "" {
		c.Language = o.Language
	}
	if o.SWAPI.BaseURL != "" {
		c.SWAPI.BaseURL = o.SWAPI.BaseURL
	}
	if o.SWAPI.Timeout != 0 {
		c.SWAPI.Timeout = o.SWAPI.Timeout
	}
	if o.SWAPI.MaxBytes != 0 {
		c.SWAPI.MaxBytes = o.SWAPI.MaxBytes
	}
	if o.Log.Level != "" {
		c.Log.Level = o.Log.Level
	}
	if o.Log.Format != "" {
		c.Log.Format = o.Log.Format
	}
}

func (c *Config) applyEnv(ctx context.Context) error {
	if v := os.Getenv(EnvLang); v != "" {
		if _, err := languageSchema.Parse(ctx, v); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidValue, EnvLang, err)
		}
		c.Language = v
	}
	if v := os.Getenv(EnvSWAPIURL); v != "" {
		if _, err := g.String().URL().Parse(ctx, v); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidValue, EnvSWAPIURL, err)
		}
		c.SWAPI.BaseURL = v
	}
	return nil
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string { return c.path }

// SWAPIConfig converts the swapi section for swapi.New.
func (c *Config) SWAPIConfig() swapi.Config {
	out := swapi.DefaultConfig()
	out.BaseURL = c.SWAPI.BaseURL
	out.Timeout = c.SWAPI.Timeout
	out.MaxBytes = c.SWAPI.MaxBytes
	return out
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
