package wirecanvas

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f32"
)

// Target is a drawable surface. *ebiten.Image satisfies it.
type Target interface {
	Bounds() image.Rectangle
	DrawTrianglesShader(vertices []ebiten.Vertex, indices []uint16, shader *ebiten.Shader, options *ebiten.DrawTrianglesShaderOptions)
}

// RendererConfig configures NewRenderer. The zero value is usable.
type RendererConfig struct {
	// VertexCapacity is the fixed vertex buffer size. Zero means
	// DefaultVertexCapacity. Must not exceed 65536.
	VertexCapacity int
	// AspectCorrect selects ProjectionAspectCorrect instead of the default
	// ProjectionVerbatim.
	AspectCorrect bool
	// ShaderSource overrides the built-in Kage program. It must declare a
	// mat4 ProjMat uniform if it uses one.
	ShaderSource []byte
}

// FrameStats describes the last rendered frame.
type FrameStats struct {
	Views      int
	Vertices   int
	DrawCalls  int
	GenTime    time.Duration
	UploadTime time.Duration
	DrawTime   time.Duration
}

// Renderer turns a Canvas into one triangle-list draw per frame. It owns the
// compiled shader, the fixed-capacity vertex buffer and the camera.
type Renderer struct {
	// Camera is the pan/zoom state read by every frame's projection.
	Camera Camera

	shader *ebiten.Shader
	buf    *VertexBuffer
	mode   ProjectionMode

	// Per-frame scratch, sized once at construction or grown to a high-water
	// mark, never shrunk.
	data     []Vertex
	screen   []ebiten.Vertex
	indices  []uint16
	uniform  []float32
	uniforms map[string]any
	op       ebiten.DrawTrianglesShaderOptions

	stats FrameStats
}

// NewRenderer compiles the shader and allocates the vertex buffer. Either
// failure is returned and no Renderer is produced.
func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	src := cfg.ShaderSource
	if src == nil {
		src = []byte(canvasShaderSrc)
	}
	shader, err := compileShader(src)
	if err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}

	capacity := cfg.VertexCapacity
	if capacity == 0 {
		capacity = DefaultVertexCapacity
	}
	buf, err := NewVertexBuffer(capacity)
	if err != nil {
		shader.Deallocate()
		return nil, fmt.Errorf("new renderer: %w", err)
	}

	// The draw backend always takes indices; an identity index list makes
	// the submission an unindexed triangle list.
	indices := make([]uint16, capacity)
	for i := range indices {
		indices[i] = uint16(i)
	}

	mode := ProjectionVerbatim
	if cfg.AspectCorrect {
		mode = ProjectionAspectCorrect
	}

	r := &Renderer{
		Camera:   newCamera(),
		shader:   shader,
		buf:      buf,
		mode:     mode,
		screen:   make([]ebiten.Vertex, capacity),
		indices:  indices,
		uniform:  make([]float32, 0, 16),
		uniforms: make(map[string]any, 1),
	}
	Logger().Info("renderer created",
		"capacity", capacity,
		"projection", mode.String())
	return r, nil
}

// ProjectionMode reports which projection variant the renderer uses.
func (r *Renderer) ProjectionMode() ProjectionMode {
	return r.mode
}

// Projection returns the projection matrix for a w x h target at the current
// camera position.
func (r *Renderer) Projection(w, h int) f32.Mat4 {
	return Projection(float32(w), float32(h), r.Camera.Pos, r.mode)
}

// Buffer exposes the vertex buffer, mostly for inspection in tests.
func (r *Renderer) Buffer() *VertexBuffer {
	return r.buf
}

// Stats returns statistics for the last Render call.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// Render draws the canvas into target. The caller clears the target first.
//
// The vertex list is rebuilt from scratch each frame, uploaded at offset 0,
// projected with the current camera and submitted as one draw call. An empty
// canvas submits nothing. Any error is fatal for the frame and nothing is
// drawn.
func (r *Renderer) Render(target Target, c *Canvas) error {
	r.stats = FrameStats{Views: c.Len()}

	t0 := time.Now()
	data, err := GenVertexData(c, r.data)
	r.data = data
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	r.stats.GenTime = time.Since(t0)

	t0 = time.Now()
	if err := r.buf.Upload(data); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	r.stats.UploadTime = time.Since(t0)
	r.stats.Vertices = r.buf.Len()

	if r.buf.Len() == 0 {
		return nil
	}

	t0 = time.Now()
	bounds := target.Bounds()
	proj := r.Projection(bounds.Dx(), bounds.Dy())
	verts := r.screen[:r.buf.Len()]
	for i, v := range r.buf.Vertices() {
		clip := Project(&proj, v.Pos)
		x, y := NDCToTarget(clip[0]/clip[3], clip[1]/clip[3], bounds)
		a := v.Color[3]
		verts[i] = ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			ColorR: v.Color[0] * a,
			ColorG: v.Color[1] * a,
			ColorB: v.Color[2] * a,
			ColorA: a,
		}
	}

	r.uniform = UniformMatrix(r.uniform, &proj)
	r.uniforms[projUniform] = r.uniform
	r.op.Uniforms = r.uniforms
	target.DrawTrianglesShader(verts, r.indices[:len(verts)], r.shader, &r.op)
	r.stats.DrawCalls = 1
	r.stats.DrawTime = time.Since(t0)
	return nil
}

// Dispose releases the shader. The renderer must not be used afterwards.
func (r *Renderer) Dispose() {
	if r.shader != nil {
		r.shader.Deallocate()
		r.shader = nil
	}
}
