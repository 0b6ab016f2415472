package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; system-wide environment still applies.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// StorageConfig holds object storage connection settings for the archive
// command.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// GetStorageConfig reads MinIO settings from the environment.
func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		Bucket:    getEnv("MINIO_BUCKET", "file-wrangler-archive"),
		UseSSL:    getEnvBool("MINIO_USE_SSL", false),
	}
}

// Environment selects the deployment environment; the server uses it to
// pick gin's mode.
func Environment() string {
	return getEnv("FW_ENV", "development")
}

// ServerHost returns the API bind host, falling back to the given default.
func ServerHost(fallback string) string {
	return getEnv("FW_HOST", fallback)
}

// ServerPort returns the API bind port, falling back to the given default.
func ServerPort(fallback int) int {
	return getEnvInt("FW_PORT", fallback)
}

// LogLevel returns the log level override, falling back to the given default.
func LogLevel(fallback string) string {
	return getEnv("FW_LOG_LEVEL", fallback)
}

// LogFormat returns the log encoding override, falling back to the given
// default.
func LogFormat(fallback string) string {
	return getEnv("FW_LOG_FORMAT", fallback)
}

// HistoryDBPath returns the location of the sqlite operation history. The
// FW_HISTORY_DB environment variable wins over the given fallback (typically
// the settings file's history.db_path); with neither set the history lives
// under the user's home directory.
func HistoryDBPath(fallback string) string {
	if path := strings.TrimSpace(os.Getenv("FW_HISTORY_DB")); path != "" {
		return path
	}
	if fallback != "" {
		return fallback
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "file-wrangler.db"
	}
	return filepath.Join(home, ".file-wrangler", "history.db")
}

// PostgresDSN returns the optional PostgreSQL history connection string.
// When set it takes precedence over the sqlite history database.
func PostgresDSN() string {
	return strings.TrimSpace(os.Getenv("FW_POSTGRES_DSN"))
}

// PreviewMaxBytes returns the preview cap override; zero means the default.
func PreviewMaxBytes() int {
	return getEnvInt("FW_PREVIEW_MAX_BYTES", 0)
}
