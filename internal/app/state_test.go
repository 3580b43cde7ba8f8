package app

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginGate(t *testing.T) {
	s := NewState()
	assert.False(t, s.Authenticated())

	fired := false
	s.On(EventLoggedIn, func(interface{}) { fired = true })

	s.SetAuthenticated(true)
	assert.True(t, s.Authenticated())
	assert.True(t, fired)
}

func TestSetSourceEmitsImageLoaded(t *testing.T) {
	s := NewState()

	var got image.Image
	s.On(EventImageLoaded, func(data interface{}) {
		got, _ = data.(image.Image)
	})

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	s.SetSource(img)
	assert.Equal(t, img, got)
	assert.Equal(t, image.Image(img), s.Source())
}

func TestSetSourceQuietDoesNotEmit(t *testing.T) {
	s := NewState()

	fired := false
	s.On(EventImageLoaded, func(interface{}) { fired = true })

	s.SetSourceQuiet(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.False(t, fired)
	assert.NotNil(t, s.Source())
}

func TestDiscardGeneration(t *testing.T) {
	s := NewState()
	s.SetSourceQuiet(image.NewRGBA(image.Rect(0, 0, 1, 1)))

	s.OnResetGeneration(func() { s.SetSourceQuiet(nil) })

	notified := false
	s.On(EventGenerationDiscarded, func(interface{}) { notified = true })

	s.DiscardGeneration()
	assert.Nil(t, s.Source())
	assert.True(t, notified)
}

func TestDiscardGenerationWithoutCallback(t *testing.T) {
	s := NewState()
	assert.NotPanics(t, func() { s.DiscardGeneration() })
}

func TestSetOptionsEmits(t *testing.T) {
	s := NewState()

	fired := false
	s.On(EventOptionsChanged, func(interface{}) { fired = true })

	opts := s.Options()
	opts.Material = "Bamboo"
	s.SetOptions(opts)

	assert.True(t, fired)
	assert.Equal(t, "Bamboo", s.Options().Material)
}
