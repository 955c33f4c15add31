// Package config resolves the generator settings from defaults, an optional
// YAML file and ARTGEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is read when no config file is given; it may be absent.
	DefaultPath = "artgen.yaml"
	// DefaultDotEnv is loaded into the environment when present.
	DefaultDotEnv = ".env"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "ARTGEN_"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of a run.
type Config struct {
	OutputDir   string  `yaml:"output_dir" mapstructure:"output_dir"`
	Format      string  `yaml:"format" mapstructure:"format"`
	DPMM        float64 `yaml:"dpmm" mapstructure:"dpmm"`
	Tempo       float64 `yaml:"tempo" mapstructure:"tempo"`
	Seed        uint64  `yaml:"seed" mapstructure:"seed"`
	Player      string  `yaml:"player" mapstructure:"player"`
	Viewer      string  `yaml:"viewer" mapstructure:"viewer"`
	MetricsFile string  `yaml:"metrics_file" mapstructure:"metrics_file"`
	Banner      bool    `yaml:"banner" mapstructure:"banner"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		OutputDir: "artgen-out",
		Format:    "png",
		DPMM:      4,
		Tempo:     120,
		Banner:    true,
	}
}

// Load resolves defaults, the YAML file at path and the environment.
// An empty path reads DefaultPath if it exists; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if err := cfg.mergeFile(path, explicit); err != nil {
		return cfg, err
	}

	if err := LoadDotEnv(DefaultDotEnv); err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.Environ()); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadDotEnv adds the variables of a .env file to the environment without
// overriding variables that are already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from ARTGEN_* entries of environ
// ("KEY=value" pairs, as returned by os.Environ). Unknown keys are ignored.
func (c *Config) ApplyEnv(environ []string) error {
	values := make(map[string]any)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		values[strings.ToLower(strings.TrimPrefix(key, EnvPrefix))] = value
	}
	if len(values) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("failed to decode environment: %w", err)
	}
	return nil
}

// Validate checks the resolved settings.
func (c Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "png", "svg", "pdf":
	default:
		return fmt.Errorf("%w: unsupported format %q", ErrInvalidConfig, c.Format)
	}
	if c.DPMM < 0 {
		return fmt.Errorf("%w: dpmm must not be negative", ErrInvalidConfig)
	}
	if c.Tempo < 0 {
		return fmt.Errorf("%w: tempo must not be negative", ErrInvalidConfig)
	}
	return nil
}
