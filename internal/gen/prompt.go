package gen

import (
	"fmt"
	"strings"

	"engrave-studio/internal/design"
)

// BuildPrompt composes the text prompt sent to the image generator from the
// selected design options. The constraints at the end push the model toward
// output the scanline vectorizer handles well: high contrast, no gradients.
func BuildPrompt(opts design.Options) string {
	var sb strings.Builder

	subject := strings.TrimSpace(opts.Prompt)
	if subject == "" {
		subject = "a decorative pattern"
	}

	fmt.Fprintf(&sb, "A laser engraving design of %s", subject)
	if opts.DesignType != "" {
		fmt.Fprintf(&sb, " for a %s", strings.ToLower(opts.DesignType))
	}
	if opts.Material != "" {
		fmt.Fprintf(&sb, " made of %s", strings.ToLower(opts.Material))
	}
	if opts.Style != "" {
		fmt.Fprintf(&sb, ", %s style", strings.ToLower(opts.Style))
	}

	sb.WriteString(". Pure black line work on a plain white background, " +
		"high contrast, no gradients, no shading, no text.")

	return sb.String()
}
