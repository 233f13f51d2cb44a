package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouterBaseURL)
	assert.Equal(t, "openai/gpt-3.5-turbo", cfg.OpenRouterModel)
	assert.Equal(t, 24*time.Hour, cfg.ChatHistoryTTL)
	assert.Equal(t, 30*time.Minute, cfg.VoiceSessionTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("VOICE_SESSION_TTL", "10m")
	t.Setenv("OPENROUTER_MODEL", "openai/gpt-4o-mini")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.VoiceSessionTTL)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.OpenRouterModel)
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("CHAT_HISTORY_TTL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.ChatHistoryTTL)
}
