package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tailscale/hujson"
)

// Config holds everything a deduplication run needs. It is built once
// at startup and handed to each component; nothing reads the
// environment after Load returns.
type Config struct {
	// API connection
	PlatformURL string `mapstructure:"platform_url"`
	Login       string `mapstructure:"login"`
	Password    string `mapstructure:"password"`

	// Headers is a JSON object of extra header name/value pairs, as a
	// string so it can be supplied through a single environment
	// variable. Comments and trailing commas are tolerated.
	Headers string `mapstructure:"headers"`

	// Run behavior
	TrackingMethod string        `mapstructure:"tracking_method"`
	PageSize       int           `mapstructure:"page_size"`
	RequestDelay   time.Duration `mapstructure:"request_delay"`

	// Logging
	LogDir    string `mapstructure:"log_dir"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// ExtraHeaders is the parsed form of Headers, decided at load time.
	ExtraHeaders map[string]string `mapstructure:"-"`
}

// Load reads configuration from QAGENT_-prefixed environment variables
// and, when present, a YAML config file. Environment values take
// precedence over file values. An explicit cfgFile that cannot be read
// is an error; a missing default file is not.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("qagent-dedup")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("QAGENT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.parseHeaders(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadAndValidate loads the config and validates it.
func LoadAndValidate(cfgFile string) (*Config, error) {
	cfg, err := Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// parseHeaders decodes Headers into ExtraHeaders. The value is a JSON
// object mapping header names to values; JWCC extensions (comments,
// trailing commas) are standardized away first so values pasted from
// ops runbooks survive.
func (c *Config) parseHeaders() error {
	c.ExtraHeaders = map[string]string{}

	raw := strings.TrimSpace(c.Headers)
	if raw == "" {
		return nil
	}

	std, err := hujson.Standardize([]byte(raw))
	if err != nil {
		return fmt.Errorf("parse headers: %w", err)
	}
	if err := json.Unmarshal(std, &c.ExtraHeaders); err != nil {
		return fmt.Errorf("parse headers: %w", err)
	}

	return nil
}
