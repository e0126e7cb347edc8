package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dict/pkg/errors"
	"github.com/arthur-debert/dict/pkg/logging"
)

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "DICT_"

// Color modes accepted by output.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the runtime settings
type Config struct {
	API    APIConfig    `koanf:"api"`
	Output OutputConfig `koanf:"output"`
}

// APIConfig describes how the dictionary API is reached
type APIConfig struct {
	BaseURL    string `koanf:"base_url" validate:"required,url"`
	EscapeWord bool   `koanf:"escape_word"`
}

// OutputConfig controls terminal output
type OutputConfig struct {
	Color string `koanf:"color" validate:"required,oneof=auto always never"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load builds the configuration from the embedded defaults and the environment
func Load() (*Config, error) {
	k, err := newKoanf()
	if err != nil {
		return nil, err
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to decode configuration")
	}

	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logging.GetLogger("config")
	log.Debug().
		Str("baseURL", cfg.API.BaseURL).
		Bool("escapeWord", cfg.API.EscapeWord).
		Str("color", cfg.Output.Color).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
	}
	return nil
}

// newKoanf loads defaults then environment overrides
func newKoanf() (*koanf.Koanf, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// DICT_API_BASE_URL -> api.base_url: only the first underscore separates the section
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	return k, nil
}

func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}
