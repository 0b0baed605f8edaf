// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file
// when present), loads them into structured Go types and validates that
// required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

/*
	Env vars are read using the HRMS_ prefix. A double underscore separates
	nesting levels, a single underscore stays part of the key:

		HRMS_SERVER__PORT          -> server.port
		HRMS_SERVER__READ_TIMEOUT  -> server.read_timeout
		HRMS_DATABASE__URI         -> database.uri
*/

const (
	// EnvPrefix is the prefix every configuration variable must carry.
	EnvPrefix = "HRMS_"

	// ServiceName tags logs and New Relic data for this service.
	ServiceName = "hrms"
)

// DefaultCORSAllowedOrigins are the front-end origins allowed to call the API
// when no override is configured.
var DefaultCORSAllowedOrigins = []string{
	"http://localhost:3000",
	"https://rococo-dieffenbachia-4abdf2.netlify.app",
}

// Config is the root configuration object for the application.
//
// Redis and Integration are optional: without them background jobs
// (welcome emails) are disabled. Observability is a pointer because it is
// optional; defaults are injected when it is missing.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig contains MongoDB connection parameters.
type DatabaseConfig struct {
	URI  string `koanf:"uri" validate:"required"`
	Name string `koanf:"name" validate:"required"`
	// ConnectTimeout is in seconds and bounds both connect and the startup ping.
	ConnectTimeout int `koanf:"connect_timeout" validate:"min=1"`
}

// RedisConfig contains Redis connection details.
// Address is "host:port"; empty disables Redis and the job worker.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// IntegrationConfig stores third-party integration credentials.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

// JobsEnabled reports whether the background job worker can run.
func (c *Config) JobsEnabled() bool {
	return c.Redis.Address != "" && c.Integration.ResendAPIKey != ""
}

// Defaults returns a Config pre-filled with every optional value. Values
// found in the environment override these.
func Defaults() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: append([]string(nil), DefaultCORSAllowedOrigins...),
		},
		Database: DatabaseConfig{
			Name:           "hrms_db",
			ConnectTimeout: 10,
		},
		Integration: IntegrationConfig{
			EmailFrom: "HRMS <onboarding@resend.dev>",
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// envKey converts HRMS_SERVER__READ_TIMEOUT into server.read_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// envValue splits comma-separated values so list fields such as
// cors_allowed_origins can be set from a single variable.
func envValue(key, value string) (string, any) {
	k := envKey(key)
	if strings.HasSuffix(k, "cors_allowed_origins") {
		parts := strings.Split(value, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		return k, origins
	}
	return k, value
}

// LoadConfig loads configuration from environment variables, unmarshals it into
// Config on top of Defaults, validates it, applies observability defaults and
// returns the resulting config.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load env variables")
	}

	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	mainConfig := Defaults()

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal main config")
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid observability config")
	}

	return mainConfig, nil
}
