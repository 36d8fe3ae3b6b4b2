package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strings"

	"devbook/internal/jobs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces every environment variable read by the service,
// e.g. DEVBOOK_DB_HOST maps to Config.DBHost.
const EnvPrefix = "DEVBOOK_"

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	HTTPPort        string `koanf:"http_port" validate:"required,numeric"`
	DBHost          string `koanf:"db_host" validate:"required"`
	DBPort          string `koanf:"db_port" validate:"required,numeric"`
	DBUser          string `koanf:"db_user" validate:"required"`
	DBPassword      string `koanf:"db_password" validate:"required"`
	DBName          string `koanf:"db_name" validate:"required"`
	DBSslMode       string `koanf:"db_sslmode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	Env             string `koanf:"env" validate:"required,oneof=development production"`
	RecountSchedule string `koanf:"recount_schedule" validate:"required"`
}

func defaultConfig() Config {
	return Config{
		HTTPPort:        "8080",
		DBPort:          "5432",
		DBSslMode:       "disable",
		Env:             EnvDevelopment,
		RecountSchedule: jobs.DefaultReconcileSchedule,
	}
}

// LoadConfig reads DEVBOOK_* variables, after loading a .env file from the
// working directory when one exists, and validates the result.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	config := defaultConfig()
	if err = k.Unmarshal("", &config); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err = validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// DSN returns the PostgreSQL connection URL for gorm's postgres driver.
// Credentials and the database name are percent-encoded, so spaces, quotes
// and '@' in a password survive.
func (c Config) DSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return dsn.String()
}

// IsProduction switches logging to JSON output.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}
