package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("LOKGEET_DATA_DIR", "")
	t.Setenv("LOKGEET_MODEL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("LOKGEET_ASR_BASE_URL", "")

	cfg := FromEnv()

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "small", cfg.ModelSize)
	assert.Empty(t, cfg.OpenAIKey)
	assert.Empty(t, cfg.ASRBaseURL)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("LOKGEET_DATA_DIR", "/var/lib/lokgeet")
	t.Setenv("LOKGEET_MODEL", "base")
	t.Setenv("OPENAI_API_KEY", "  sk-test  ")
	t.Setenv("LOKGEET_ASR_BASE_URL", "http://localhost:8080/v1")

	cfg := FromEnv()

	assert.Equal(t, "/var/lib/lokgeet", cfg.DataDir)
	assert.Equal(t, "base", cfg.ModelSize)
	assert.Equal(t, "sk-test", cfg.OpenAIKey, "keys are trimmed")
	assert.Equal(t, "http://localhost:8080/v1", cfg.ASRBaseURL)
}

func TestDerivedPaths(t *testing.T) {
	cfg := &Config{DataDir: "data"}

	assert.Equal(t, filepath.Join("data", "uploads"), cfg.UploadDir())
	assert.Equal(t, filepath.Join("data", "entries.json"), cfg.StorePath())
	assert.Equal(t, filepath.Join("data", "export.json"), cfg.DefaultExportPath())
}
