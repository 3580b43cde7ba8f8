package gen

import (
	"testing"

	"engrave-studio/internal/design"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	opts := design.Options{
		Material:   "Walnut Wood",
		DesignType: "Cutting Board",
		Style:      "Line Art",
		Prompt:     "a mountain range with pine trees",
	}

	got := BuildPrompt(opts)
	assert.Equal(t,
		"A laser engraving design of a mountain range with pine trees "+
			"for a cutting board made of walnut wood, line art style. "+
			"Pure black line work on a plain white background, "+
			"high contrast, no gradients, no shading, no text.",
		got)
}

func TestBuildPromptEmptySubject(t *testing.T) {
	got := BuildPrompt(design.Options{Prompt: "   "})
	assert.Contains(t, got, "a decorative pattern")
}

func TestBuildPromptOmitsEmptyFields(t *testing.T) {
	got := BuildPrompt(design.Options{Prompt: "an owl"})
	assert.NotContains(t, got, "for a")
	assert.NotContains(t, got, "made of")
	assert.NotContains(t, got, "style.")
	assert.Contains(t, got, "A laser engraving design of an owl.")
}
