package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// FileName is the config file looked up in the user config directory.
const FileName = "rpick.yml"

// Env holds settings read from the environment.
type Env struct {
	ConfigPath string `env:"RPICK_CONFIG"`
	LogLevel   string `env:"RPICK_LOG_LEVEL" envDefault:"warn"`
	ForceColor bool   `env:"CLICOLOR_FORCE"` // style tables even when stdout is not a terminal
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ResolvePath picks the config file: an explicit flag value, then
// RPICK_CONFIG, then rpick.yml in the user config directory.
func ResolvePath(flag string, e Env) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if e.ConfigPath != "" {
		return e.ConfigPath, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, FileName), nil
}
