// Package config reads and writes the spark settings file.
//
// The file is a small hand-edited key = value list; values may be quoted
// and unknown keys are ignored so older and newer versions can share it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LFroesch/spark/internal/logger"
)

// Config holds all spark configuration
type Config struct {
	// ProjectsPath is where projects live. Default ~/src/spark.
	ProjectsPath string
	// DefaultEditor is the command launched on a selected project.
	// Default "code".
	DefaultEditor string
}

// Default returns the built-in configuration.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		ProjectsPath:  filepath.Join(home, "src", "spark"),
		DefaultEditor: "code",
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "spark", "config"), nil
}

// Load reads ~/.config/spark/config, falling back to defaults when the
// file is missing or a line cannot be understood.
func Load() *Config {
	cfg := Default()

	configPath, err := GetConfigPath()
	if err != nil {
		logger.Error("Failed to locate config file: %v", err)
		return cfg
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"`)

		switch key {
		case "projects_path":
			if value != "" {
				cfg.ProjectsPath = value
			}
		case "default_editor":
			if value != "" {
				cfg.DefaultEditor = value
			}
		default:
			// Unknown keys are ignored, not errors.
		}
	}

	return cfg
}

// Save writes the whole file through a temp file and rename, so a crash
// mid-write cannot corrupt a previously valid config.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("cannot locate config file: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		logger.Error("Failed to create config directory %s: %v", configDir, err)
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	content := fmt.Sprintf(`# spark configuration
# Path where projects are stored
projects_path = "%s"

# Default editor to open projects (code, vim, etc.)
default_editor = "%s"
`, cfg.ProjectsPath, cfg.DefaultEditor)

	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(content), 0644); err != nil {
		logger.Error("Failed to write config file %s: %v", tmpPath, err)
		return fmt.Errorf("cannot write config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("cannot replace config file: %w", err)
	}

	return nil
}

// ProjectsPath resolves the effective projects directory: the SPARK_PATH
// environment variable wins, then the config file, then the default.
func ProjectsPath(cfg *Config) string {
	if env := os.Getenv("SPARK_PATH"); env != "" {
		return ExpandPath(env)
	}
	if cfg.ProjectsPath != "" {
		return ExpandPath(cfg.ProjectsPath)
	}
	return Default().ProjectsPath
}

// ExpandPath expands a leading ~ and returns an absolute path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else if strings.HasPrefix(path, "~/") {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
