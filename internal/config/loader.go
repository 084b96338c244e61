package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".atomscope"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// AIConfig is the `ai` section of the configuration file.
type AIConfig struct {
	APIKey      string        `yaml:"apiKey,omitempty"`
	Model       string        `yaml:"model,omitempty"`
	Temperature *float32      `yaml:"temperature,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty"`
	Proxy       string        `yaml:"proxy,omitempty"`
}

// ServerConfig is the `server` section of the configuration file.
type ServerConfig struct {
	Listen string `yaml:"listen,omitempty"`
}

// File represents the structure of the .atomscope configuration file.
type File struct {
	AI        AIConfig     `yaml:"ai,omitempty"`
	Language  string       `yaml:"language,omitempty"`
	BatchSize int          `yaml:"batch,omitempty"`
	DataDir   string       `yaml:"dataDir,omitempty"`
	Cache     *bool        `yaml:"cache,omitempty"`
	Server    ServerConfig `yaml:"server,omitempty"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .atomscope in the current directory
// 3. Look for .atomscope in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
