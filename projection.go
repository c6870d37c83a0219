package wirecanvas

import (
	"image"

	"golang.org/x/image/math/f32"
)

// ProjectionMode selects the Y translation term of the canvas projection.
type ProjectionMode uint8

const (
	// ProjectionVerbatim divides the Y translation by -w. Canvas content is
	// offset vertically unless the target is square.
	ProjectionVerbatim ProjectionMode = iota
	// ProjectionAspectCorrect divides the Y translation by -h, so the canvas
	// origin lands on the target's top-left corner at any aspect ratio.
	ProjectionAspectCorrect
)

func (m ProjectionMode) String() string {
	switch m {
	case ProjectionVerbatim:
		return "verbatim"
	case ProjectionAspectCorrect:
		return "aspect-correct"
	default:
		return "unknown"
	}
}

// Projection returns the orthographic matrix mapping canvas pixels (origin
// top-left, Y down) to normalized device coordinates for a w x h target
// panned by cam. The matrix is row-major (m[4*row+col]):
//
//	| 2/w   0    0  tx |
//	|  0  -2/h   0  ty |
//	|  0    0   -1   0 |
//	|  0    0    0   1 |
//
// with tx = -(w + 2*cam.x)/w and ty = -(h + 2*cam.y)/(-w) for
// ProjectionVerbatim, or /(-h) for ProjectionAspectCorrect.
func Projection(w, h float32, cam f32.Vec2, mode ProjectionMode) f32.Mat4 {
	tx := -(w + cam[0] + cam[0]) / w
	ydiv := -w
	if mode == ProjectionAspectCorrect {
		ydiv = -h
	}
	ty := -(h + cam[1] + cam[1]) / ydiv
	return f32.Mat4{
		2 / w, 0, 0, tx,
		0, -2 / h, 0, ty,
		0, 0, -1, 0,
		0, 0, 0, 1,
	}
}

// Project applies m to the point p (w = 1) and returns the clip-space result.
func Project(m *f32.Mat4, p f32.Vec3) f32.Vec4 {
	var out f32.Vec4
	for r := 0; r < 4; r++ {
		out[r] = m[4*r]*p[0] + m[4*r+1]*p[1] + m[4*r+2]*p[2] + m[4*r+3]
	}
	return out
}

// NDCToTarget maps normalized device coordinates onto the pixel grid of
// bounds (Y up in NDC, Y down in pixels). This is the viewport step a GPU
// performs after the vertex stage.
func NDCToTarget(ndcX, ndcY float32, bounds image.Rectangle) (x, y float32) {
	w := float32(bounds.Dx())
	h := float32(bounds.Dy())
	x = float32(bounds.Min.X) + (ndcX+1)*0.5*w
	y = float32(bounds.Min.Y) + (1-ndcY)*0.5*h
	return x, y
}

// UniformMatrix flattens m in column-major order, the layout shader mat4
// uniforms expect, appending to dst[:0].
func UniformMatrix(dst []float32, m *f32.Mat4) []float32 {
	dst = dst[:0]
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			dst = append(dst, m[4*r+c])
		}
	}
	return dst
}
