package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the application reads from the environment.
type Config struct {
	// DataDir is the root for all files the tool manages: uploads,
	// the collection file and the default export target.
	DataDir string
	// ModelSize selects the ASR model (tiny, base, small, medium, large).
	ModelSize string
	// OpenAIKey enables the whisper transcription provider when set.
	OpenAIKey string
	// ASRBaseURL points the provider at a self-hosted whisper server
	// instead of the hosted API. Optional.
	ASRBaseURL string
}

// LoadEnv loads environment variables from a .env file if one exists.
// A missing .env file is not an error; variables may be set system-wide.
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

// FromEnv builds a Config from the current environment, applying defaults.
func FromEnv() *Config {
	cfg := &Config{
		DataDir:    strings.TrimSpace(os.Getenv("LOKGEET_DATA_DIR")),
		ModelSize:  strings.TrimSpace(os.Getenv("LOKGEET_MODEL")),
		OpenAIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		ASRBaseURL: strings.TrimSpace(os.Getenv("LOKGEET_ASR_BASE_URL")),
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.ModelSize == "" {
		cfg.ModelSize = "small"
	}
	return cfg
}

// InitializeConfig loads the .env file and builds the configuration.
// This is the main entry point for configuration loading.
func InitializeConfig() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	return FromEnv(), nil
}

// UploadDir is the directory audio blobs are written into.
func (c *Config) UploadDir() string {
	return filepath.Join(c.DataDir, "uploads")
}

// StorePath is the collection backing file.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "entries.json")
}

// DefaultExportPath is used when the export command gets no target path.
func (c *Config) DefaultExportPath() string {
	return filepath.Join(c.DataDir, "export.json")
}
