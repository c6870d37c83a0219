package wirecanvas

import "golang.org/x/image/math/f32"

const (
	// MinZoom is the floor Camera.Zoom is clamped to. Zero or negative zoom
	// would invert or degenerate panning.
	MinZoom = 0.1
	// ZoomStep is the zoom change per scrolled line.
	ZoomStep = 0.1
)

// Camera is the pan/zoom state the projection is computed from. It is owned
// by a Renderer and mutated by an InputHandler.
type Camera struct {
	// Pos is the pan offset in canvas units.
	Pos f32.Vec2
	// Zoom scales pointer deltas into pan distance so dragging feels the same
	// at every zoom level. Never below MinZoom.
	Zoom float32
}

// newCamera returns a camera with no pan and unit zoom.
func newCamera() Camera {
	return Camera{Zoom: 1}
}

// Pan moves the camera against a pointer delta, scaled by zoom.
func (c *Camera) Pan(dx, dy float32) {
	c.Pos[0] -= dx * c.Zoom
	c.Pos[1] -= dy * c.Zoom
}

// Scroll applies a vertical scroll of dy lines to the zoom and clamps it to
// MinZoom.
func (c *Camera) Scroll(dy float32) {
	c.Zoom -= dy * ZoomStep
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
}
