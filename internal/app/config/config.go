// Package config persists user-facing application settings as YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the complete persisted configuration.
type Settings struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Preview  PreviewConfig  `yaml:"preview"`
	History  HistoryConfig  `yaml:"history"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DefaultsConfig seeds listing and filtering flags the user has not set.
type DefaultsConfig struct {
	// Root directory to list when none is given on the command line.
	Root string `yaml:"root,omitempty"`

	IncludeSubdirs bool `yaml:"include_subdirs"`

	CaseSensitive bool `yaml:"case_sensitive"`

	// Sort column: name, size, modified or path.
	SortBy string `yaml:"sort_by,omitempty"`
}

// PreviewConfig bounds file previews.
type PreviewConfig struct {
	MaxBytes int `yaml:"max_bytes,omitempty"`
}

// HistoryConfig locates the operation history database.
type HistoryConfig struct {
	// Path may reference environment variables like ${HOME}.
	DBPath string `yaml:"db_path,omitempty"`
}

// ServerConfig holds HTTP server defaults for the serve command.
type ServerConfig struct {
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// LoggingConfig selects log verbosity and encoding.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Manager loads and saves the settings file.
type Manager struct {
	configPath string
	settings   *Settings
}

// NewManager creates a manager for the given settings path.
func NewManager(configPath string) *Manager {
	return &Manager{configPath: configPath}
}

// Load reads the settings file, creating it with defaults when missing.
func (m *Manager) Load() (*Settings, error) {
	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		defaults := DefaultSettings()
		if err := m.Save(defaults); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		m.settings = defaults
		return defaults, nil
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	expandEnvironmentVariables(&settings)

	if err := validate(&settings); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	m.settings = &settings
	return &settings, nil
}

// Save writes the settings file, creating its directory when needed.
func (m *Manager) Save(settings *Settings) error {
	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.settings = settings
	return nil
}

// Get returns the currently loaded settings.
func (m *Manager) Get() *Settings {
	return m.settings
}

// DefaultSettings returns the configuration written on first run.
func DefaultSettings() *Settings {
	return &Settings{
		Defaults: DefaultsConfig{
			IncludeSubdirs: false,
			CaseSensitive:  false,
			SortBy:         "name",
		},
		Preview: PreviewConfig{
			MaxBytes: 10 * 1024,
		},
		History: HistoryConfig{
			DBPath: "",
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func expandEnvironmentVariables(settings *Settings) {
	settings.Defaults.Root = os.ExpandEnv(settings.Defaults.Root)
	settings.History.DBPath = os.ExpandEnv(settings.History.DBPath)
}

func validate(settings *Settings) error {
	switch settings.Defaults.SortBy {
	case "", "name", "size", "modified", "path":
	default:
		return fmt.Errorf("unknown sort key '%s'", settings.Defaults.SortBy)
	}

	if settings.Preview.MaxBytes < 0 {
		return fmt.Errorf("preview max_bytes must not be negative")
	}

	if settings.Server.Port < 0 || settings.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", settings.Server.Port)
	}

	switch settings.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level '%s'", settings.Logging.Level)
	}

	return nil
}

// GetDefaultConfigPath returns the default settings file location.
func GetDefaultConfigPath() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".file-wrangler", "config.yaml")
	}

	return "./config/file-wrangler.yaml"
}
