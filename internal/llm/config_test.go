package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite: "fallback-model",
		},
	}

	// Unknown tier should fallback to TierStandard, then TierLite
	assert.Equal(t, "fallback-model", config.GetModel("unknown"))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{},
	}

	// Empty config should return empty string
	assert.Equal(t, "", config.GetModel(TierAdvanced))
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel(TierAdvanced, "custom-model")

	// Original should be unchanged
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))

	// New config should have custom model
	assert.Equal(t, "custom-model", newConfig.GetModel(TierAdvanced))

	// Other tiers should be copied
	assert.Equal(t, "gemini-2.5-flash-lite", newConfig.GetModel(TierLite))
}

func TestModelTierConstants(t *testing.T) {
	assert.Equal(t, ModelTier("lite"), TierLite)
	assert.Equal(t, ModelTier("standard"), TierStandard)
	assert.Equal(t, ModelTier("advanced"), TierAdvanced)
}

func TestProviderConstants(t *testing.T) {
	assert.Equal(t, Provider("gemini"), ProviderGemini)
	assert.Equal(t, Provider("openai"), ProviderOpenAI)
	assert.Equal(t, Provider("anthropic"), ProviderAnthropic)
}

func TestParseProvider(t *testing.T) {
	tests := []struct {
		input   string
		want    Provider
		wantErr bool
	}{
		{"", ProviderGemini, false},
		{"gemini", ProviderGemini, false},
		{" OpenAI ", ProviderOpenAI, false},
		{"anthropic", ProviderAnthropic, false},
		{"mistral", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseProvider(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTier(t *testing.T) {
	tier, err := ParseTier("")
	assert.NoError(t, err)
	assert.Equal(t, TierStandard, tier)

	tier, err = ParseTier("LITE")
	assert.NoError(t, err)
	assert.Equal(t, TierLite, tier)

	_, err = ParseTier("turbo")
	assert.Error(t, err)
}

func TestDefaultConfigFor(t *testing.T) {
	assert.Equal(t, ProviderGemini, DefaultConfigFor(ProviderGemini).Provider)
	assert.Equal(t, ProviderAnthropic, DefaultConfigFor(ProviderAnthropic).Provider)
	assert.Equal(t, ProviderOpenAI, DefaultConfigFor(ProviderOpenAI).Provider)
	assert.Equal(t, "gpt-4o-mini", DefaultConfigFor(ProviderOpenAI).GetModel(TierLite))

	for _, provider := range []Provider{ProviderGemini, ProviderAnthropic, ProviderOpenAI} {
		cfg := DefaultConfigFor(provider)
		assert.InDelta(t, 0.1, cfg.Temperature, 0.0001)
		assert.Equal(t, 4096, cfg.MaxTokens)
		for _, tier := range []ModelTier{TierLite, TierStandard, TierAdvanced} {
			assert.NotEmpty(t, cfg.GetModel(tier), "%s/%s", provider, tier)
		}
	}
}

func TestWithModel_KeepsGenerationSettings(t *testing.T) {
	config := DefaultAnthropicConfig()
	config.Temperature = 0.4

	newConfig := config.WithModel(TierLite, "claude-custom")
	assert.Equal(t, ProviderAnthropic, newConfig.Provider)
	assert.InDelta(t, 0.4, newConfig.Temperature, 0.0001)
	assert.Equal(t, "claude-3-5-haiku-latest", config.GetModel(TierLite))
}
