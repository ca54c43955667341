// Package config parses process-wide configuration for the projectio
// binaries from the environment, in the caarlos0/env style the rest of
// the pack's registry-backed config loader uses.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"projectio/internal/obs/log"
)

// AppConfig is the top-level configuration for cmd/projectio and
// cmd/projectio-server.
type AppConfig struct {
	Log            log.Config
	ReportDir      string `env:"PROJECTIO_REPORT_DIR" envDefault:"./reports"`
	ServerAddr     string `env:"PROJECTIO_SERVER_ADDR" envDefault:":8080"`
	SensitivityPar int    `env:"PROJECTIO_SENSITIVITY_PARALLELISM" envDefault:"4"`
}

// Load parses AppConfig from the environment, including its embedded
// log.Config.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
