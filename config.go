package aperture

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/agiangrant/aperture/internal/ffi"
)

const (
	// DefaultConfigFile is the config file name looked up by the CLI
	DefaultConfigFile = "aperture.toml"

	// EnvLibraryPath overrides library.path when set
	EnvLibraryPath = "APERTURE_LIB_PATH"
)

// Config represents the aperture.toml configuration file
type Config struct {
	Library LibraryConfig `toml:"library"`
	Apps    AppsConfig    `toml:"apps"`
	Log     LogConfig     `toml:"log"`
}

type LibraryConfig struct {
	// Explicit path to steam_api. Empty uses the platform's library name
	// and the system loader's default lookup.
	Path string `toml:"path"`
}

type AppsConfig struct {
	// SteamApps accessor exports, newest first. Order is kept as written.
	Candidates []string `toml:"candidates"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	return Config{
		Apps: AppsConfig{
			Candidates: append([]string(nil), ffi.DefaultAppsCandidates...),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from path.
// If the file doesn't exist, returns default config
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if p := os.Getenv(EnvLibraryPath); p != "" {
		config.Library.Path = p
	}
	if len(config.Apps.Candidates) == 0 {
		config.Apps.Candidates = DefaultConfig().Apps.Candidates
	}

	return config, nil
}

// SaveConfig writes the configuration to path
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Build returns a zap logger for the configured level.
func (c LogConfig) Build() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}

	if c.Level != "" {
		level, err := zap.ParseAtomicLevel(c.Level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", c.Level, err)
		}
		zc.Level = level
	}

	return zc.Build()
}
