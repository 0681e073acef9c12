package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "openai", cfg.Engine)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, int64(10485760), cfg.MaxUploadBytes)
	assert.Equal(t, 60*time.Second, cfg.AnalyzeTimeout)
	assert.Equal(t, 120*time.Second, cfg.URLAnalyzeTimeout)
	assert.Equal(t, 2.0, cfg.TieThreshold)
	assert.Equal(t, 30*time.Second, cfg.CaptureNavTimeout)
}

func TestLoadRequiresKeyForSelectedEngine(t *testing.T) {
	t.Setenv("VISION_ENGINE", "openai")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoadGeminiEngine(t *testing.T) {
	t.Setenv("VISION_ENGINE", "gemini")
	t.Setenv("GEMINI_API_KEY", "g-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Engine)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
}

func TestLoadRejectsUnknownEngine(t *testing.T) {
	t.Setenv("VISION_ENGINE", "llava")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown VISION_ENGINE")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("TIE_THRESHOLD", "5")
	t.Setenv("ANALYZE_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 5.0, cfg.TieThreshold)
	assert.Equal(t, 30*time.Second, cfg.AnalyzeTimeout)
}
