package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings are process-wide options read from the environment. CLI flags
// default to these values.
type Settings struct {
	DBPath      string `env:"ARCADE_DB" envDefault:"~/.arcade/arcade.db"`
	FPS         int    `env:"ARCADE_FPS" envDefault:"60"`
	LogLevel    string `env:"ARCADE_LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"ARCADE_LOG_FILE" envDefault:"~/.arcade/arcade.log"`
	SSHAddr     string `env:"ARCADE_SSH_ADDR" envDefault:":23234"`
	HostKeyPath string `env:"ARCADE_HOST_KEY"`
}

// LoadSettings reads Settings from the environment after loading the given
// .env files, if they exist. Variables already set in the environment win
// over the files.
func LoadSettings(envFiles ...string) (Settings, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("config: failed to load %s: %w", f, err)
		}
	}

	s, err := env.ParseAs[Settings]()
	if err != nil {
		return Settings{}, fmt.Errorf("config: parsing environment: %w", err)
	}
	if s.FPS <= 0 {
		return s, fmt.Errorf("config: ARCADE_FPS must be positive, got %d", s.FPS)
	}
	return s, nil
}
