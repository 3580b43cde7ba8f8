package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformRoundTrip(t *testing.T) {
	v := NewTransform()
	v.Scale = 2.5
	v.OffsetX = 40
	v.OffsetY = -15

	mx, my := v.ToModel(100, 60)
	dx, dy := v.ToDevice(mx, my)
	assert.InDelta(t, 100, dx, 1e-9)
	assert.InDelta(t, 60, dy, 1e-9)
}

func TestZoomAtKeepsFocalPointFixed(t *testing.T) {
	v := NewTransform()
	v.Scale = 1.5
	v.OffsetX = 20
	v.OffsetY = 30

	// The model point under the cursor must map back to the same device
	// position after zooming.
	focalX, focalY := 320.0, 240.0
	mx, my := v.ToModel(focalX, focalY)

	v.ZoomAt(focalX, focalY, 1.25)

	dx, dy := v.ToDevice(mx, my)
	assert.InDelta(t, focalX, dx, 1e-9)
	assert.InDelta(t, focalY, dy, 1e-9)
}

func TestZoomClampsScale(t *testing.T) {
	v := NewTransform()
	for i := 0; i < 100; i++ {
		v.ZoomAt(0, 0, 1.25)
	}
	assert.Equal(t, MaxScale, v.Scale)

	for i := 0; i < 200; i++ {
		v.ZoomAt(0, 0, 0.8)
	}
	assert.Equal(t, MinScale, v.Scale)
}

func TestZoomAtClampBoundaryIsNoop(t *testing.T) {
	v := NewTransform()
	v.Scale = MaxScale
	v.OffsetX = 12
	v.OffsetY = 34

	v.ZoomAt(100, 100, 2.0)
	assert.Equal(t, MaxScale, v.Scale)
	assert.Equal(t, 12.0, v.OffsetX)
	assert.Equal(t, 34.0, v.OffsetY)
}

func TestPanIsUnscaled(t *testing.T) {
	v := NewTransform()
	v.Scale = 4.0
	v.Pan(10, -5)
	assert.Equal(t, 10.0, v.OffsetX)
	assert.Equal(t, -5.0, v.OffsetY)
}

func TestReset(t *testing.T) {
	v := NewTransform()
	v.ZoomAt(50, 50, 2)
	v.Pan(7, 7)
	v.Reset()
	assert.Equal(t, 1.0, v.Scale)
	assert.Equal(t, 0.0, v.OffsetX)
	assert.Equal(t, 0.0, v.OffsetY)
}
