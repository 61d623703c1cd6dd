package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App  AppConfig
	CORS CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STITCH_APP_ENV" default:"development"`
	Port         string `envconfig:"STITCH_APP_PORT" default:"4000"`
	LogLevel     string `envconfig:"STITCH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STITCH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CORSConfig struct {
	// Origins mirrors the comma-separated CORS_ORIGIN list the frontend
	// deploys configure; the default covers local Vite development.
	Origins []string `envconfig:"STITCH_CORS_ORIGIN" default:"http://localhost:5173"`
}
