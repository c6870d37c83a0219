package wirecanvas

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/f32"
)

const (
	// DefaultVertexCapacity is the vertex buffer size used when a
	// RendererConfig leaves VertexCapacity at zero. 2048 vertices hold 341
	// views.
	DefaultVertexCapacity = 2048
	// VerticesPerView is the number of vertices emitted per canvas placement:
	// two triangles, no index sharing.
	VerticesPerView = 6
	// maxVertexCapacity is the largest buffer addressable with uint16 indices.
	maxVertexCapacity = 1 << 16
)

var (
	// ErrCapacityExceeded is returned when a frame produces more vertices than
	// the vertex buffer can hold. Nothing is truncated.
	ErrCapacityExceeded = errors.New("wirecanvas: vertex buffer capacity exceeded")
	// ErrInvalidCapacity is returned when a vertex buffer cannot be created
	// with the requested capacity.
	ErrInvalidCapacity = errors.New("wirecanvas: invalid vertex buffer capacity")
)

// Vertex is one corner of a view quad in canvas space.
type Vertex struct {
	// Pos is X, Y, Z. Z is always 0.
	Pos f32.Vec3
	// Color is R, G, B, A, not premultiplied.
	Color f32.Vec4
}

// GenVertexData flattens the canvas into a triangle list, appending into
// dst[:0] so callers can reuse the backing array across frames. Each
// placement yields exactly VerticesPerView vertices in canvas order:
//
//	top-left, top-right, bottom-right,
//	top-left, bottom-left, bottom-right
func GenVertexData(c *Canvas, dst []Vertex) ([]Vertex, error) {
	dst = dst[:0]
	for i, e := range c.entries {
		v, ok := c.Store.View(e.View)
		if !ok {
			return dst, fmt.Errorf("canvas entry %d (view %d): %w", i, e.View, ErrUnknownView)
		}
		x0, y0 := e.CanvasPos[0], e.CanvasPos[1]
		x1, y1 := x0+v.Resolution[0], y0+v.Resolution[1]
		dst = append(dst,
			Vertex{Pos: f32.Vec3{x0, y0, 0}, Color: FillColor},
			Vertex{Pos: f32.Vec3{x1, y0, 0}, Color: FillColor},
			Vertex{Pos: f32.Vec3{x1, y1, 0}, Color: FillColor},
			Vertex{Pos: f32.Vec3{x0, y0, 0}, Color: FillColor},
			Vertex{Pos: f32.Vec3{x0, y1, 0}, Color: FillColor},
			Vertex{Pos: f32.Vec3{x1, y1, 0}, Color: FillColor},
		)
	}
	return dst, nil
}

// VertexBuffer is a fixed-capacity vertex store. It never grows: uploads
// larger than the capacity fail.
type VertexBuffer struct {
	data []Vertex
	n    int
}

// NewVertexBuffer allocates a buffer holding up to capacity vertices.
func NewVertexBuffer(capacity int) (*VertexBuffer, error) {
	if capacity <= 0 || capacity > maxVertexCapacity {
		return nil, fmt.Errorf("new vertex buffer of %d vertices: %w", capacity, ErrInvalidCapacity)
	}
	return &VertexBuffer{data: make([]Vertex, capacity)}, nil
}

// Upload overwrites the buffer contents starting at offset 0. On error the
// previous contents are left untouched.
func (b *VertexBuffer) Upload(data []Vertex) error {
	if len(data) > len(b.data) {
		return fmt.Errorf("upload %d vertices into buffer of %d: %w", len(data), len(b.data), ErrCapacityExceeded)
	}
	b.n = copy(b.data, data)
	return nil
}

// Vertices returns the range written by the last successful Upload.
func (b *VertexBuffer) Vertices() []Vertex {
	return b.data[:b.n]
}

// Len returns the number of vertices written by the last successful Upload.
func (b *VertexBuffer) Len() int {
	return b.n
}

// Cap returns the fixed capacity.
func (b *VertexBuffer) Cap() int {
	return len(b.data)
}
