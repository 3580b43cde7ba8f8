// Package project provides design session file handling and persistence.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"engrave-studio/internal/design"
)

// File represents an engraving design session file (.engproj). The edited
// raster is stored as a sibling PNG; the session file carries paths and
// metadata only.
type File struct {
	Version  int       `json:"version"`
	Name     string    `json:"name"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`

	// Design metadata driving prompt construction and export naming.
	Options design.Options `json:"options"`

	// Image paths (relative to the session file).
	SourceImagePath string `json:"source_image,omitempty"`
	EditedImagePath string `json:"edited_image,omitempty"`
}

// New creates a new session file with default settings.
func New(name string) *File {
	now := time.Now()
	return &File{
		Version:  1,
		Name:     name,
		Created:  now,
		Modified: now,
		Options:  design.NewOptions(),
	}
}

// Load loads a session from an .engproj file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var proj File
	if err := json.Unmarshal(data, &proj); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}

	return &proj, nil
}

// Save saves the session to a file.
func (p *File) Save(path string) error {
	p.Modified = time.Now()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SetSourceImage records the source image path relative to the session.
func (p *File) SetSourceImage(projectPath, imagePath string) {
	p.SourceImagePath = relativeTo(projectPath, imagePath)
	p.Modified = time.Now()
}

// SetEditedImage records the edited raster path relative to the session.
func (p *File) SetEditedImage(projectPath, imagePath string) {
	p.EditedImagePath = relativeTo(projectPath, imagePath)
	p.Modified = time.Now()
}

// SourceImageAbs returns the absolute path to the source image.
func (p *File) SourceImageAbs(projectPath string) string {
	return absoluteFrom(projectPath, p.SourceImagePath)
}

// EditedImageAbs returns the absolute path to the edited raster.
func (p *File) EditedImageAbs(projectPath string) string {
	return absoluteFrom(projectPath, p.EditedImagePath)
}

func relativeTo(projectPath, imagePath string) string {
	rel, err := filepath.Rel(filepath.Dir(projectPath), imagePath)
	if err != nil {
		return imagePath
	}
	return rel
}

func absoluteFrom(projectPath, imagePath string) string {
	if imagePath == "" {
		return ""
	}
	if filepath.IsAbs(imagePath) {
		return imagePath
	}
	return filepath.Join(filepath.Dir(projectPath), imagePath)
}
