package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	derrors "github.com/saucesteals/silk/internal/errors"
)

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(homeDir, ".config", "silk", "config.toml")
}

// Load reads the TOML configuration at path, layered over the defaults. An
// empty path falls back to the conventional location; a missing file is not
// an error, the defaults simply apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, decodeErr := toml.DecodeFile(path, cfg); decodeErr != nil {
				return nil, derrors.Wrapf(
					decodeErr,
					derrors.CodeInvalidConfig,
					"failed to parse config file %s",
					path,
				)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
