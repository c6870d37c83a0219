package wirecanvas

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/f32"
)

// ErrUnknownView is returned when a ViewID cannot be resolved through the
// store it is looked up in.
var ErrUnknownView = errors.New("wirecanvas: unknown view")

// ViewID is a stable handle to a View owned by a ViewStore. The zero value
// never refers to a view.
type ViewID uint32

// ComponentIndex is the stable position of a Component inside its View.
type ComponentIndex int

// Component is a positioned, sized wireframe element inside a View. It is
// pure data; nothing renders components yet.
type Component struct {
	// Size is the component's width and height in pixels.
	Size f32.Vec2
	// Pos is relative to the top-left of the owning view, in pixels.
	Pos f32.Vec2
	// View refers back to the owning view. It is zero until the owning view
	// is registered with a ViewStore.
	View ViewID
}

// View is a named screen with an intrinsic resolution. It owns its
// components by value, in insertion order.
type View struct {
	// Name is the display label assigned by the user.
	Name string
	// Resolution is the view's size in pixels. Not necessarily the size it is
	// rendered at. Stored as float32 to avoid casts, but expected to hold
	// whole, non-negative values.
	Resolution f32.Vec2

	id         ViewID
	owner      *ViewStore
	components []Component
}

// NewView creates a view with the given name and resolution.
func NewView(name string, width, height float32) *View {
	return &View{
		Name:       name,
		Resolution: f32.Vec2{width, height},
	}
}

// ID returns the handle this view was registered under, or zero if it has
// not been added to a ViewStore.
func (v *View) ID() ViewID {
	return v.id
}

// AddComponent appends a component at (x, y) relative to the view's top-left
// with the given size, and returns its index.
func (v *View) AddComponent(x, y, width, height float32) ComponentIndex {
	v.components = append(v.components, Component{
		Pos:  f32.Vec2{x, y},
		Size: f32.Vec2{width, height},
		View: v.id,
	})
	return ComponentIndex(len(v.components) - 1)
}

// Component returns the component at index i. The pointer stays valid until
// the next AddComponent call.
func (v *View) Component(i ComponentIndex) (*Component, bool) {
	if i < 0 || int(i) >= len(v.components) {
		return nil, false
	}
	return &v.components[i], true
}

// NumComponents returns the number of components in the view.
func (v *View) NumComponents() int {
	return len(v.components)
}

// Components returns the view's components in insertion order. The returned
// slice MUST NOT be mutated.
func (v *View) Components() []Component {
	return v.components
}

// ViewStore owns every View in a scene. Canvases and components refer to
// views through the ViewIDs it hands out, so a view lives as long as the
// store does no matter how many placements reference it.
type ViewStore struct {
	views []*View
}

// NewViewStore creates an empty store.
func NewViewStore() *ViewStore {
	return &ViewStore{}
}

// Add registers v and returns its handle. Adding the same view twice returns
// the handle from the first registration. A view belongs to one store;
// adding it to a second store panics.
func (s *ViewStore) Add(v *View) ViewID {
	if v == nil {
		panic("wirecanvas: cannot add nil view")
	}
	if v.owner == s {
		return v.id
	}
	if v.owner != nil {
		panic("wirecanvas: view already belongs to another store")
	}
	s.views = append(s.views, v)
	v.owner = s
	v.id = ViewID(len(s.views))
	for i := range v.components {
		v.components[i].View = v.id
	}
	return v.id
}

// NewView creates a view and registers it in one step.
func (s *ViewStore) NewView(name string, width, height float32) ViewID {
	return s.Add(NewView(name, width, height))
}

// View resolves a handle. A nil store resolves nothing.
func (s *ViewStore) View(id ViewID) (*View, bool) {
	if s == nil || id == 0 || int(id) > len(s.views) {
		return nil, false
	}
	return s.views[id-1], true
}

// AddComponent places a new component into the view identified by id.
func (s *ViewStore) AddComponent(id ViewID, x, y, width, height float32) (ComponentIndex, error) {
	v, ok := s.View(id)
	if !ok {
		return 0, fmt.Errorf("add component to view %d: %w", id, ErrUnknownView)
	}
	return v.AddComponent(x, y, width, height), nil
}

// Len returns the number of registered views.
func (s *ViewStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.views)
}
