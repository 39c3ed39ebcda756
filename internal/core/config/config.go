package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Catalog holds the tariff catalog source configuration.
	Catalog CatalogConfig `mapstructure:",squash"`

	// Hubs holds the hub directory configuration.
	Hubs HubsConfig `mapstructure:",squash"`

	// Redis holds the quote history store configuration.
	Redis RedisConfig `mapstructure:",squash"`
}

// CatalogConfig describes where the tariff catalog is loaded from and how often.
type CatalogConfig struct {
	// Source is a CSV file path, an http(s) URL serving the catalog CSV, or a
	// postgres:// URL of the database holding the catalog table.
	Source string `mapstructure:"CATALOG_SOURCE" required:"true"`
	// Table is the catalog table read when Source is a Postgres URL.
	Table string `mapstructure:"CATALOG_TABLE" default:"tariff_rows"`
	// RefreshSeconds is the periodic reload interval. 0 disables periodic reloads.
	RefreshSeconds int `mapstructure:"CATALOG_REFRESH_SECONDS" default:"0"`
	// FetchTimeoutSeconds bounds a single remote catalog download.
	FetchTimeoutSeconds int `mapstructure:"CATALOG_FETCH_TIMEOUT_SECONDS" default:"15"`
	// ProxyURL routes remote catalog downloads through an HTTP proxy when set.
	ProxyURL string `mapstructure:"CATALOG_PROXY_URL"`
	// UserAgent replaces the default User-Agent of catalog downloads when set.
	UserAgent string `mapstructure:"CATALOG_USER_AGENT"`
}

// HubsConfig holds the hub directory location.
type HubsConfig struct {
	// DirectoryPath is the YAML file with hubs and region preference rules.
	DirectoryPath string `mapstructure:"HUB_DIRECTORY_PATH" default:"configs/hubs.yaml"`
}

// RedisConfig holds the quote history connection details.
type RedisConfig struct {
	// URL is the Redis connection string (redis://[:password@]host[:port][/database]).
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// QuoteTTLSeconds is how long issued quotes stay retrievable.
	QuoteTTLSeconds int `mapstructure:"QUOTE_HISTORY_TTL_SECONDS" default:"86400"`
}

// RefreshInterval returns the periodic reload interval, zero when disabled.
func (c CatalogConfig) RefreshInterval() time.Duration {
	if c.RefreshSeconds <= 0 {
		return 0
	}
	return time.Duration(c.RefreshSeconds) * time.Second
}

// FetchTimeout returns the remote catalog download timeout.
func (c CatalogConfig) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// QuoteTTL returns how long issued quotes are kept.
func (c RedisConfig) QuoteTTL() time.Duration {
	return time.Duration(c.QuoteTTLSeconds) * time.Second
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
