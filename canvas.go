package wirecanvas

import "golang.org/x/image/math/f32"

// ViewOnCanvas places a view on the canvas.
type ViewOnCanvas struct {
	View ViewID
	// CanvasPos is the view's top-left corner on the canvas (origin top-left).
	CanvasPos f32.Vec2
}

// Canvas is the ordered list of view placements rendered every frame.
// Insertion order is rendering order. Duplicates are allowed.
type Canvas struct {
	// Store resolves the ViewIDs placed on this canvas. A nil Store (the
	// zero Canvas) resolves nothing, so every placement is an unknown view.
	Store *ViewStore

	entries []ViewOnCanvas
}

// NewCanvas creates an empty canvas whose placements resolve through store.
// A nil store gets a fresh one.
func NewCanvas(store *ViewStore) *Canvas {
	if store == nil {
		store = NewViewStore()
	}
	return &Canvas{Store: store}
}

// AddView appends a placement of view at (x, y).
func (c *Canvas) AddView(view ViewID, x, y float32) {
	c.entries = append(c.entries, ViewOnCanvas{
		View:      view,
		CanvasPos: f32.Vec2{x, y},
	})
}

// Entries returns the placements in rendering order. The returned slice MUST
// NOT be mutated.
func (c *Canvas) Entries() []ViewOnCanvas {
	return c.entries
}

// Len returns the number of placements.
func (c *Canvas) Len() int {
	return len(c.entries)
}

// EntryBounds returns the canvas-space rectangle covered by the i-th
// placement. ok is false if i is out of range or the view cannot be resolved.
func (c *Canvas) EntryBounds(i int) (r Rect, ok bool) {
	if i < 0 || i >= len(c.entries) {
		return Rect{}, false
	}
	e := c.entries[i]
	v, ok := c.Store.View(e.View)
	if !ok {
		return Rect{}, false
	}
	return Rect{
		X:      e.CanvasPos[0],
		Y:      e.CanvasPos[1],
		Width:  v.Resolution[0],
		Height: v.Resolution[1],
	}, true
}
