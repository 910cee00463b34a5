package internal

import (
	"fmt"

	"github.com/hbomb79/Videomania/internal/api"
	"github.com/hbomb79/Videomania/internal/blob"
	"github.com/hbomb79/Videomania/internal/database"
	"github.com/hbomb79/Videomania/internal/ingest"
	"github.com/hbomb79/Videomania/internal/media"
	"github.com/hbomb79/Videomania/pkg/logger"
	"github.com/ilyakaznacheev/cleanenv"
)

// VideomaniaConfig is the struct used to contain the
// various user config supplied by file, or the environment.
type VideomaniaConfig struct {
	Database   database.DatabaseConfig `yaml:"database" env-required:"true"`
	Blob       blob.Config             `yaml:"blob"`
	Media      media.Config            `yaml:"media"`
	Ingest     ingest.Config           `yaml:"ingest"`
	RestConfig api.RestConfig          `yaml:"api"`
	LogLevel   string                  `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`
}

// LoadFromFile loads a configuration file formatted in YAML in to the
// VideomaniaConfig. Environment variables take precedence over the file.
func (config *VideomaniaConfig) LoadFromFile(configPath string) error {
	if err := cleanenv.ReadConfig(configPath, config); err != nil {
		return fmt.Errorf("failed to load configuration from %s: %w", configPath, err)
	}

	return nil
}

// LoadFromEnv populates the config using only the environment, for
// deployments which do not ship a config file.
func (config *VideomaniaConfig) LoadFromEnv() error {
	if err := cleanenv.ReadEnv(config); err != nil {
		return fmt.Errorf("failed to load configuration from environment: %w", err)
	}

	return nil
}

// MinLoggingLevel converts the configured log level name in to the
// logger level it represents.
func (config *VideomaniaConfig) MinLoggingLevel() (logger.LogStatus, error) {
	level, ok := logger.ParseLevel(config.LogLevel)
	if !ok {
		return logger.INFO, fmt.Errorf("unknown log level %q", config.LogLevel)
	}

	return level, nil
}
