package main

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`
	Version     string `mapstructure:"VERSION"`
	TLSCertFile string `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile  string `mapstructure:"TLS_KEY_FILE"`

	DB struct {
		Driver         string `mapstructure:"DB_DRIVER"`
		MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`
	} `mapstructure:",squash"`

	Mongo struct {
		URI      string `mapstructure:"MONGODB_URI"`
		Database string `mapstructure:"MONGODB_DATABASE"`
	} `mapstructure:",squash"`

	Postgres struct {
		Host     string `mapstructure:"POSTGRES_HOST"`
		Port     string `mapstructure:"POSTGRES_PORT"`
		User     string `mapstructure:"POSTGRES_USER"`
		Password string `mapstructure:"POSTGRES_PASSWORD"`
		Name     string `mapstructure:"POSTGRES_DB"`
	} `mapstructure:",squash"`

	Limiter struct {
		Enabled bool    `mapstructure:"LIMITER_ENABLED"`
		RPS     float64 `mapstructure:"LIMITER_RPS"`
		Burst   int     `mapstructure:"LIMITER_BURST"`
	} `mapstructure:",squash"`
}

// Every key needs a default so that AutomaticEnv can see it during Unmarshal.
var defaults = map[string]any{
	"PORT":              "4000",
	"ENVIRONMENT":       "development",
	"VERSION":           "1.0.0",
	"TLS_CERT_FILE":     "",
	"TLS_KEY_FILE":      "",
	"DB_DRIVER":         DriverMongo,
	"MIGRATIONS_PATH":   "file://migrations",
	"MONGODB_URI":       "mongodb://localhost:27017",
	"MONGODB_DATABASE":  "bloglist",
	"POSTGRES_HOST":     "localhost",
	"POSTGRES_PORT":     "5432",
	"POSTGRES_USER":     "postgres",
	"POSTGRES_PASSWORD": "",
	"POSTGRES_DB":       "bloglist",
	"LIMITER_ENABLED":   true,
	"LIMITER_RPS":       10,
	"LIMITER_BURST":     20,
}

// loadConfig reads the dotenv file at path, if it exists, and lets environment
// variables override it.
func loadConfig(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
