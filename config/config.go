package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	AppName     = "catalog-browser"
	EnvFileName = "config.env"

	// DefaultCatalogURL is the catalog API used when CATALOG_URL is not
	// set. The /products endpoint there returns the whole catalog in one
	// response.
	DefaultCatalogURL = "https://dummyjson.com"
)

// LoadEnvFile loads environment variables from the config file in the user's
// config directory. Errors are ignored since the file may not exist.
func LoadEnvFile() {
	configBase, err := os.UserConfigDir()
	if err != nil {
		return
	}
	configPath := filepath.Join(configBase, AppName, EnvFileName)
	_ = godotenv.Load(configPath)
}

// CatalogURL returns the configured catalog base URL.
func CatalogURL() string {
	if url := os.Getenv("CATALOG_URL"); url != "" {
		return url
	}
	return DefaultCatalogURL
}

// LogLevel returns the configured log level name, defaulting to info.
func LogLevel() string {
	if level := os.Getenv("CATALOG_LOG_LEVEL"); level != "" {
		return level
	}
	return "info"
}
