package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	prompt, err := Get(InsightsFile, "job-market-intro")
	require.NoError(t, err)
	assert.Contains(t, prompt, "job market data")
	assert.Contains(t, prompt, "{{.Timeframe}}")
}

func TestGet_LineArrayJoined(t *testing.T) {
	prompt, err := Get(InsightsFile, "salary-example")
	require.NoError(t, err)
	assert.Contains(t, prompt, "\n")
	assert.Contains(t, prompt, `"year": "2019"`)
}

func TestGet_InvalidFile(t *testing.T) {
	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	_, err := Get(InsightsFile, "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestHas(t *testing.T) {
	assert.True(t, Has(InsightsFile, "course-recommendation-requirements"))
	assert.False(t, Has(InsightsFile, "salary-requirements"))
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	assert.NotPanics(t, func() {
		prompt := MustGet(InsightsFile, "closing-array")
		assert.Equal(t, "Return only the JSON array, no additional text.", prompt)
	})
}

func TestFormat(t *testing.T) {
	template := "Salary data for {{.Role}} in {{.Industry}}"
	data := map[string]string{
		"Role":     "Data Analyst",
		"Industry": "Fintech",
	}

	assert.Equal(t, "Salary data for Data Analyst in Fintech", Format(template, data))
}

func TestFormat_NoPlaceholders(t *testing.T) {
	template := "No placeholders here"
	assert.Equal(t, template, Format(template, map[string]string{"Key": "Value"}))
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	assert.Equal(t, template, Format(template, map[string]string{})) // Placeholder remains
}

func TestFormat_ValueContainingPlaceholderIsNotExpanded(t *testing.T) {
	template := "{{.JobDescription}} for {{.TargetRole}}"
	data := map[string]string{
		"JobDescription": "Write {{.TargetRole}} docs",
		"TargetRole":     "SRE",
	}

	assert.Equal(t, "Write {{.TargetRole}} docs for SRE", Format(template, data))
}

func TestCaching(t *testing.T) {
	prompt1, err := Get(InsightsFile, "resume-content-intro")
	require.NoError(t, err)

	prompt2, err := Get(InsightsFile, "resume-content-intro")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
