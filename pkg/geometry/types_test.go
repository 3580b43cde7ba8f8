package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint2DOps(t *testing.T) {
	a := NewPoint2D(1, 2)
	b := NewPoint2D(4, 6)

	assert.Equal(t, 5.0, a.Distance(b))
	assert.Equal(t, NewPoint2D(5, 8), a.Add(b))
	assert.Equal(t, NewPoint2D(3, 4), b.Sub(a))
	assert.Equal(t, NewPoint2D(2, 4), a.Scale(2))
}

func TestSegmentLength(t *testing.T) {
	s := Segment{Start: NewPoint2D(0, 0), End: NewPoint2D(3, 4)}
	assert.Equal(t, 5.0, s.Length())

	dot := Segment{Start: NewPoint2D(2, 2), End: NewPoint2D(2, 2)}
	assert.Equal(t, 0.0, dot.Length())
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 5)
	assert.True(t, r.Contains(NewPoint2D(15, 12)))
	assert.True(t, r.Contains(NewPoint2D(10, 10)))
	assert.True(t, r.Contains(NewPoint2D(30, 15)))
	assert.False(t, r.Contains(NewPoint2D(9, 12)))
	assert.False(t, r.Contains(NewPoint2D(15, 16)))
}

func TestRectCenter(t *testing.T) {
	assert.Equal(t, NewPoint2D(20, 12.5), NewRect(10, 10, 20, 5).Center())
}

func TestBoundingBox(t *testing.T) {
	points := []Point2D{
		NewPoint2D(3, 7),
		NewPoint2D(-1, 2),
		NewPoint2D(5, 4),
	}
	box := BoundingBox(points)
	assert.Equal(t, NewRect(-1, 2, 6, 5), box)

	assert.Equal(t, Rect{}, BoundingBox(nil))
}
