package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"taskboard/internal/client"
)

const envPrefix = "TASKBOARD_"

// Config is read from ~/.config/taskboard/config.yaml and TASKBOARD_*
// variables. Flags override both.
type Config struct {
	Server      string `koanf:"server"`
	Output      string `koanf:"output"`
	SessionFile string `koanf:"session_file"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "taskboard", "config.yaml")
}

// LoadConfig reads path if it exists, then the environment.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
		}
	}

	// TASKBOARD_SESSION_FILE -> session_file
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Server == "" {
		cfg.Server = client.DefaultBaseURL
	}
	if cfg.Output == "" {
		cfg.Output = FormatTable
	}
	if err := validateFormat(cfg.Output); err != nil {
		return nil, err
	}
	return &cfg, nil
}
