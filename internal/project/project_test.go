package project

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "owl.engproj")

	proj := New("owl")
	proj.Options.Material = "Slate"
	proj.Options.Prompt = "an owl on a branch"
	proj.SetEditedImage(path, filepath.Join(dir, "owl.png"))

	require.NoError(t, proj.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "owl", loaded.Name)
	assert.Equal(t, 1, loaded.Version)
	assert.Equal(t, "Slate", loaded.Options.Material)
	assert.Equal(t, "an owl on a branch", loaded.Options.Prompt)
	assert.Equal(t, "owl.png", loaded.EditedImagePath)
	assert.Equal(t, filepath.Join(dir, "owl.png"), loaded.EditedImageAbs(path))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.engproj"))
	assert.Error(t, err)
}

func TestImagePathsRelativeToSession(t *testing.T) {
	proj := New("test")
	proj.SetSourceImage("/work/sessions/a.engproj", "/work/sessions/images/a.png")
	assert.Equal(t, filepath.Join("images", "a.png"), proj.SourceImagePath)

	assert.Equal(t, "/work/sessions/images/a.png",
		proj.SourceImageAbs("/work/sessions/a.engproj"))
}

func TestAbsPathPassthrough(t *testing.T) {
	proj := New("test")
	proj.SourceImagePath = "/elsewhere/src.png"
	assert.Equal(t, "/elsewhere/src.png", proj.SourceImageAbs("/work/a.engproj"))

	assert.Equal(t, "", proj.EditedImageAbs("/work/a.engproj"))
}
