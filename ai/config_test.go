package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1536, cfg.EmbeddingDimension)
	assert.Equal(t, cfg.EmbeddingHost, cfg.ScoringHost)
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithHost("http://scoring.internal:9100"),
		WithEmbeddingModel("embeddinggemma"),
		WithScoringModel("qwen2.5:3b"),
		WithEmbeddingDimension(768),
		WithTemperature(0.0),
	)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://scoring.internal:9100/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://scoring.internal:9100/v1", cfg.ScoringHost)
	assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
	assert.Equal(t, 768, cfg.EmbeddingDimension)
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"bare host", "http://localhost:11434", "http://localhost:11434/v1"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"already normalized", "http://localhost:11434/v1", "http://localhost:11434/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(WithHost(tt.host))
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.EmbeddingHost)
			assert.Equal(t, tt.want, cfg.ScoringHost)
		})
	}
}

func TestConfigValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing embedding host", func(c *Config) { c.EmbeddingHost = "" }},
		{"missing scoring host", func(c *Config) { c.ScoringHost = "" }},
		{"missing embedding model", func(c *Config) { c.EmbeddingModel = "" }},
		{"missing scoring model", func(c *Config) { c.ScoringModel = "" }},
		{"zero dimension", func(c *Config) { c.EmbeddingDimension = 0 }},
		{"negative temperature", func(c *Config) { c.Temperature = -0.1 }},
		{"temperature too high", func(c *Config) { c.Temperature = 2.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestScoreResultEmpty(t *testing.T) {
	var nilResult *ScoreResult
	assert.True(t, nilResult.Empty())
	assert.True(t, (&ScoreResult{}).Empty())

	score := 7.5
	assert.False(t, (&ScoreResult{OverallScore: &score}).Empty())
	assert.False(t, (&ScoreResult{Recommendations: []string{"vary sentence openings"}}).Empty())
}
