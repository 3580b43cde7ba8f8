// Package design holds the design metadata the user selects in the sidebar:
// material, design type, and the free-form description fed to the image
// generator. The metadata also drives export file naming.
package design

import (
	"github.com/google/uuid"
)

// Options describes one design session.
type Options struct {
	ID         string `json:"id"`
	Material   string `json:"material"`
	DesignType string `json:"design_type"`
	Style      string `json:"style,omitempty"`
	Prompt     string `json:"prompt,omitempty"`
}

// NewOptions returns options with a fresh session ID and defaults.
func NewOptions() Options {
	return Options{
		ID:         uuid.NewString(),
		Material:   Materials()[0],
		DesignType: DesignTypes()[0],
		Style:      Styles()[0],
	}
}

// Materials lists the engraving materials offered in the sidebar.
func Materials() []string {
	return []string{
		"Birch Wood",
		"Walnut Wood",
		"Bamboo",
		"Leather",
		"Slate",
		"Clear Acrylic",
		"Anodized Aluminum",
	}
}

// DesignTypes lists the product types offered in the sidebar.
func DesignTypes() []string {
	return []string{
		"Coaster",
		"Sign",
		"Plaque",
		"Keychain",
		"Ornament",
		"Cutting Board",
	}
}

// Styles lists the rendering styles passed to the generator.
func Styles() []string {
	return []string{
		"Line Art",
		"Silhouette",
		"Geometric",
		"Hand Drawn",
		"Art Deco",
	}
}
