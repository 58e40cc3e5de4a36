package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed sample_config.toml
var sampleConfig string

const configFileName = "compositor.toml"

// DefaultConfigPath returns the absolute path of the per-user configuration file.
func DefaultConfigPath() (string, error) {
	if base, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && strings.TrimSpace(base) != "" {
		return expandPath(filepath.Join(base, "compositor", configFileName))
	}
	return expandPath("~/.config/compositor/" + configFileName)
}

// resolveConfigPath picks the file to load. An explicit path must exist;
// the implicit candidates are tried in order and may all be absent, in which
// case the per-user path is reported as not existing.
func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		found, err := isConfigFile(expanded)
		if err != nil {
			return "", false, err
		}
		if !found {
			return expanded, false, fmt.Errorf("config file %s does not exist", expanded)
		}
		return expanded, true, nil
	}

	userPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	workdirPath, err := filepath.Abs(configFileName)
	if err != nil {
		return "", false, err
	}
	for _, candidate := range []string{userPath, workdirPath} {
		if found, _ := isConfigFile(candidate); found {
			return candidate, true, nil
		}
	}
	return userPath, false, nil
}

func isConfigFile(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("stat config: %w", err)
	case info.IsDir():
		return false, fmt.Errorf("config path %s is a directory", path)
	}
	return true, nil
}

// expandPath replaces a leading "~" or "~/" with the home directory and
// makes the result absolute.
func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return "", nil
	}
	if pathValue == "~" || strings.HasPrefix(pathValue, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		pathValue = filepath.Join(home, strings.TrimPrefix(pathValue, "~"))
	}
	absolute, err := filepath.Abs(pathValue)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath exposes the tilde and absolute-path expansion rules.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
