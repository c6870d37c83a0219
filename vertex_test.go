package wirecanvas

import (
	"errors"
	"testing"

	"golang.org/x/image/math/f32"
)

// newTestCanvas places n views of varying sizes in a row.
func newTestCanvas(n int) *Canvas {
	s := NewViewStore()
	c := NewCanvas(s)
	for i := 0; i < n; i++ {
		id := s.NewView("v", float32(100+i), float32(50+2*i))
		c.AddView(id, float32(i*150), float32(i*3))
	}
	return c
}

func TestGenVertexDataEmpty(t *testing.T) {
	verts, err := GenVertexData(NewCanvas(nil), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(verts) != 0 {
		t.Errorf("len = %d, want 0", len(verts))
	}
}

func TestGenVertexDataCount(t *testing.T) {
	for _, n := range []int{1, 2, 7, 341} {
		verts, err := GenVertexData(newTestCanvas(n), nil)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(verts) != VerticesPerView*n {
			t.Errorf("n=%d: len = %d, want %d", n, len(verts), VerticesPerView*n)
		}
	}
}

func TestGenVertexDataBounds(t *testing.T) {
	c := newTestCanvas(5)
	verts, err := GenVertexData(c, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < c.Len(); i++ {
		want, _ := c.EntryBounds(i)
		quad := verts[i*VerticesPerView : (i+1)*VerticesPerView]
		minX, minY := quad[0].Pos[0], quad[0].Pos[1]
		maxX, maxY := minX, minY
		for _, v := range quad {
			minX = min(minX, v.Pos[0])
			minY = min(minY, v.Pos[1])
			maxX = max(maxX, v.Pos[0])
			maxY = max(maxY, v.Pos[1])
		}
		got := Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
		if got != want {
			t.Errorf("entry %d bbox = %+v, want %+v", i, got, want)
		}
	}
}

func TestGenVertexDataWinding(t *testing.T) {
	s := NewViewStore()
	c := NewCanvas(s)
	c.AddView(s.NewView("v", 800, 600), 1000, 20)

	verts, err := GenVertexData(c, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []f32.Vec3{
		{1000, 20, 0}, {1800, 20, 0}, {1800, 620, 0},
		{1000, 20, 0}, {1000, 620, 0}, {1800, 620, 0},
	}
	for i, v := range verts {
		if v.Pos != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, v.Pos, want[i])
		}
		if v.Color != FillColor {
			t.Errorf("vertex %d color = %v, want %v", i, v.Color, FillColor)
		}
	}
}

func TestGenVertexDataReusesDst(t *testing.T) {
	c := newTestCanvas(3)
	buf := make([]Vertex, 0, 64)
	verts, err := GenVertexData(c, buf)
	if err != nil {
		t.Fatal(err)
	}
	if &verts[0] != &buf[:1][0] {
		t.Error("GenVertexData should append into the provided backing array")
	}
	// A second pass over a smaller canvas must not keep stale vertices.
	verts, _ = GenVertexData(newTestCanvas(1), verts)
	if len(verts) != VerticesPerView {
		t.Errorf("len = %d, want %d", len(verts), VerticesPerView)
	}
}

func TestGenVertexDataUnknownView(t *testing.T) {
	c := newTestCanvas(1)
	c.AddView(99, 0, 0)
	_, err := GenVertexData(c, nil)
	if !errors.Is(err, ErrUnknownView) {
		t.Errorf("err = %v, want ErrUnknownView", err)
	}
}

func TestNewVertexBufferInvalid(t *testing.T) {
	for _, n := range []int{0, -1, maxVertexCapacity + 1} {
		if _, err := NewVertexBuffer(n); !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("NewVertexBuffer(%d) err = %v, want ErrInvalidCapacity", n, err)
		}
	}
}

func TestVertexBufferUpload(t *testing.T) {
	b, err := NewVertexBuffer(12)
	if err != nil {
		t.Fatal(err)
	}
	if b.Cap() != 12 || b.Len() != 0 {
		t.Fatalf("Cap/Len = %d/%d, want 12/0", b.Cap(), b.Len())
	}

	verts, _ := GenVertexData(newTestCanvas(2), nil)
	if err := b.Upload(verts); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 12 {
		t.Errorf("Len() = %d, want 12", b.Len())
	}

	// A smaller upload overwrites from offset 0.
	small, _ := GenVertexData(newTestCanvas(1), nil)
	if err := b.Upload(small); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 6 || b.Vertices()[0] != small[0] {
		t.Errorf("after small upload Len = %d, first = %v", b.Len(), b.Vertices()[0])
	}
}

func TestVertexBufferUploadOverflow(t *testing.T) {
	b, _ := NewVertexBuffer(DefaultVertexCapacity)
	ok, _ := GenVertexData(newTestCanvas(1), nil)
	if err := b.Upload(ok); err != nil {
		t.Fatal(err)
	}

	// 342 views need 2052 vertices.
	big, _ := GenVertexData(newTestCanvas(342), nil)
	err := b.Upload(big)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}
	if b.Len() != 6 {
		t.Errorf("failed upload changed Len to %d, want 6", b.Len())
	}
}

func TestGenVertexDataZeroCanvas(t *testing.T) {
	var empty Canvas
	verts, err := GenVertexData(&empty, nil)
	if err != nil || len(verts) != 0 {
		t.Errorf("empty zero canvas = %d vertices, %v", len(verts), err)
	}

	var c Canvas
	c.AddView(1, 0, 0)
	if _, err := GenVertexData(&c, nil); !errors.Is(err, ErrUnknownView) {
		t.Errorf("err = %v, want ErrUnknownView", err)
	}
}
