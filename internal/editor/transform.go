package editor

const (
	// MinScale and MaxScale bound the viewport zoom factor.
	MinScale = 0.1
	MaxScale = 10.0
)

// Transform maps between device (screen) coordinates and model (image)
// coordinates. The mapping is a uniform scale followed by a pixel offset:
// device = model*scale + offset.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{Scale: 1.0}
}

// ToModel converts a device-space point to model space.
func (t Transform) ToModel(deviceX, deviceY float64) (modelX, modelY float64) {
	modelX = (deviceX - t.OffsetX) / t.Scale
	modelY = (deviceY - t.OffsetY) / t.Scale
	return
}

// ToDevice converts a model-space point to device space.
func (t Transform) ToDevice(modelX, modelY float64) (deviceX, deviceY float64) {
	deviceX = modelX*t.Scale + t.OffsetX
	deviceY = modelY*t.Scale + t.OffsetY
	return
}

// ZoomAt multiplies the scale by factor, clamped to [MinScale, MaxScale],
// keeping the model point under the focal device point stationary.
func (t *Transform) ZoomAt(focalX, focalY, factor float64) {
	newScale := clampScale(t.Scale * factor)
	ratio := newScale / t.Scale

	// The focal point must map to the same model point before and after.
	t.OffsetX = focalX - (focalX-t.OffsetX)*ratio
	t.OffsetY = focalY - (focalY-t.OffsetY)*ratio
	t.Scale = newScale
}

// Pan moves the viewport by a raw device-space delta. The delta is not
// scaled since the drag gesture was captured in device space.
func (t *Transform) Pan(deltaX, deltaY float64) {
	t.OffsetX += deltaX
	t.OffsetY += deltaY
}

// Reset restores the identity transform.
func (t *Transform) Reset() {
	t.Scale = 1.0
	t.OffsetX = 0
	t.OffsetY = 0
}

func clampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
