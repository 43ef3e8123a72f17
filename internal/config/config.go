package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/providers/structs"
)

// DefaultConfigFile is looked up in the working directory when no --config is given.
const DefaultConfigFile = "apidocs.yml"

// Config is the toolchain configuration.
// Source is where the OpenAPI document comes from.
// Target is the published copy the other commands work on.
// Samples configures code sample rendering.
// Drift lists the extensions ignored when comparing documents.
// Links configures the documentation tree walk.
// Preview configures the preview server.
type Config struct {
	Source   *SourceConfig  `koanf:"source"`
	Target   string         `koanf:"target" env:"APIDOCS_TARGET"`
	Samples  *SamplesConfig `koanf:"samples"`
	Drift    *DriftConfig   `koanf:"drift"`
	Links    *LinksConfig   `koanf:"links"`
	Preview  *PreviewConfig `koanf:"preview"`
	LogLevel string         `koanf:"logLevel" env:"APIDOCS_LOG_LEVEL"`
}

// SourceConfig locates the upstream document.
// URL, when set, takes precedence over Path.
type SourceConfig struct {
	Path    string        `koanf:"path" env:"APIDOCS_SOURCE_PATH"`
	URL     string        `koanf:"url" env:"OPENAPI_SOURCE_URL"`
	Hint    string        `koanf:"hint"`
	Timeout time.Duration `koanf:"timeout" env:"APIDOCS_HTTP_TIMEOUT"`
}

type SamplesConfig struct {
	BaseURL string `koanf:"baseURL"`
	Token   string `koanf:"token"`
}

type DriftConfig struct {
	Ignore []string `koanf:"ignore"`
}

// LinksConfig describes the documentation tree.
// Folders are relative to Root; missing folders are skipped.
type LinksConfig struct {
	Root      string   `koanf:"root" env:"APIDOCS_DOCS_ROOT"`
	Folders   []string `koanf:"folders"`
	Extension string   `koanf:"extension"`
}

type PreviewConfig struct {
	Address string `koanf:"address" env:"APIDOCS_PREVIEW_ADDR"`
}

// NewDefaultConfig creates the config used when no file is present.
func NewDefaultConfig() *Config {
	return &Config{
		Source: &SourceConfig{
			Path:    "../api/openapi/openapi-public.json",
			Hint:    `run "make openapi" in the API repository`,
			Timeout: 30 * time.Second,
		},
		Target: "openapi/widgetic-api-public.json",
		Samples: &SamplesConfig{
			Token: "YOUR_API_KEY",
		},
		Drift: &DriftConfig{
			Ignore: []string{"x-codeSamples", "x-code-samples"},
		},
		Links: &LinksConfig{
			Root:      ".",
			Folders:   []string{"docs", "guides", "api-reference"},
			Extension: ".mdx",
		},
		Preview: &PreviewConfig{
			Address: ":4010",
		},
		LogLevel: "info",
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. A missing file is not an error: defaults are used.
func Load(path string) (*Config, error) {
	if path == "" {
		return newConfig(nil)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			slog.Debug("config file not found, using defaults", "path", path)
			return newConfig(nil)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := newConfig(file.Provider(path))
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// NewConfigFromContent creates a config from YAML content layered over the
// defaults, then applies environment overrides.
func NewConfigFromContent(content []byte) (*Config, error) {
	if len(content) == 0 {
		return newConfig(nil)
	}
	return newConfig(rawbytes.Provider(content))
}

func newConfig(provider koanf.Provider) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(NewDefaultConfig(), "koanf"), nil); err != nil {
		return nil, err
	}

	if provider != nil {
		if err := k.Load(provider, yaml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	cfg.ensureValues()
	return cfg, nil
}

// ensureValues restores defaults blanked out by the file.
func (c *Config) ensureValues() {
	def := NewDefaultConfig()

	if c.Source == nil {
		c.Source = def.Source
	}
	if c.Source.Timeout <= 0 {
		c.Source.Timeout = def.Source.Timeout
	}
	if c.Source.Hint == "" {
		c.Source.Hint = def.Source.Hint
	}
	if c.Target == "" {
		c.Target = def.Target
	}
	if c.Samples == nil {
		c.Samples = def.Samples
	}
	if c.Drift == nil {
		c.Drift = def.Drift
	}
	if c.Links == nil {
		c.Links = def.Links
	}
	if c.Links.Root == "" {
		c.Links.Root = def.Links.Root
	}
	if c.Links.Extension == "" {
		c.Links.Extension = def.Links.Extension
	}
	if !strings.HasPrefix(c.Links.Extension, ".") {
		c.Links.Extension = "." + c.Links.Extension
	}
	if c.Preview == nil {
		c.Preview = def.Preview
	}
	if c.Preview.Address == "" {
		c.Preview.Address = def.Preview.Address
	}
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
