package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load,
// e.g. TASKLIST_BACKEND_KIND.
const EnvPrefix = "TASKLIST"

// DefaultConfigName is the config file looked up in the working directory
// when no explicit file is given.
const DefaultConfigName = "tasklist"

// ErrInvalidConfig is wrapped by every validation failure returned from Load.
var ErrInvalidConfig = errors.New("config validation failed")

var validate = validator.New()

// Load configuration from defaults, an optional config file and environment
// variables, in increasing order of precedence. Flags bound to v by the
// caller take precedence over all of them. v may be nil.
//
// If configFile is empty, tasklist.yaml (or .json/.toml) in the working
// directory is read when present.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints and the rules that span sections.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	switch c.Backend.Kind {
	case BackendFirebase:
		if c.Firebase.CredentialsFile == "" {
			return fmt.Errorf("%w: firebase.credentials_file is required for the firebase backend", ErrInvalidConfig)
		}
		if c.Auth.VerifyPassword {
			return fmt.Errorf("%w: auth.verify_password is not supported by the firebase backend", ErrInvalidConfig)
		}
	case BackendPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("%w: database.url is required for the postgres backend", ErrInvalidConfig)
		}
	}

	return nil
}

// setDefaults registers every key so that AutomaticEnv can populate it
// during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("backend.kind", BackendFirebase)
	v.SetDefault("firebase.credentials_file", "serviceAccountKey.json")
	v.SetDefault("firebase.project_id", "")
	v.SetDefault("database.url", "")
	v.SetDefault("auth.verify_password", false)
}
