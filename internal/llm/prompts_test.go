package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefinePrompt(t *testing.T) {
	prompt := RefinePrompt("  an app for dog walkers  ")

	assert.Contains(t, prompt, "expert startup coach")
	assert.Contains(t, prompt, `"""an app for dog walkers"""`)
	assert.Contains(t, prompt, "Refined description:")
}

func TestCompilePrompt_MinimalInputs(t *testing.T) {
	prompt := CompilePrompt("A dog-walking marketplace.", "", "")

	assert.Contains(t, prompt, "- Title Slide (tagline)")
	assert.Contains(t, prompt, `"""A dog-walking marketplace."""`)
	assert.Contains(t, prompt, "starting with '# Title Slide'")
	assert.NotContains(t, prompt, "Visual Notes")
	assert.NotContains(t, prompt, "Additional instructions")
}

func TestCompilePrompt_WithNoteAndVisual(t *testing.T) {
	prompt := CompilePrompt("Summary.", "keep it short", "https://example.com/chart.png")

	assert.Contains(t, prompt, "Additional instructions: keep it short")
	assert.Contains(t, prompt, "this visual: https://example.com/chart.png")
}
