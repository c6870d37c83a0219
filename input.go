package wirecanvas

import "golang.org/x/image/math/f32"

// CameraEventKind identifies what an input event did to the camera.
type CameraEventKind uint8

const (
	CameraPanned CameraEventKind = iota // Pos changed by a secondary-button drag
	CameraZoomed                        // Zoom changed by a scroll
)

// CameraEvent reports a camera change caused by input.
type CameraEvent struct {
	Kind CameraEventKind
	// Pos and Zoom are the camera state after the change.
	Pos  f32.Vec2
	Zoom float32
	// Delta is the pointer delta for CameraPanned.
	Delta f32.Vec2
	// DY is the scroll amount for CameraZoomed.
	DY float32
}

// CameraObserver is notified of camera changes made by an InputHandler.
// See the ecs subpackage for a Donburi-backed implementation.
type CameraObserver interface {
	CameraChanged(event CameraEvent)
}

// InputHandler turns raw input events into camera changes on a Renderer.
// Events must be handled in arrival order.
type InputHandler struct {
	LastPointerPos f32.Vec2
	Button1Down    bool // primary
	Button2Down    bool // secondary

	// FirstFrame is true until the first recognized event has been handled.
	// While set, pointer moves only record the position so the initial
	// position does not produce a huge delta.
	FirstFrame bool

	observer CameraObserver
}

// NewInputHandler creates a handler in its initial state.
func NewInputHandler() *InputHandler {
	return &InputHandler{FirstFrame: true}
}

// SetObserver sets the optional camera observer. Pass nil to clear it.
func (h *InputHandler) SetObserver(o CameraObserver) {
	h.observer = o
}

// HandleEvent applies e to h and to r's camera. Events of unrecognized kinds
// (and middle-button presses) are ignored and leave FirstFrame set.
func (h *InputHandler) HandleEvent(r *Renderer, e Event) {
	switch e.Kind {
	case EventPointerMove:
		delta := f32.Vec2{e.X - h.LastPointerPos[0], e.Y - h.LastPointerPos[1]}
		if !h.FirstFrame && h.Button2Down {
			r.Camera.Pan(delta[0], delta[1])
			h.notify(CameraEvent{Kind: CameraPanned, Pos: r.Camera.Pos, Zoom: r.Camera.Zoom, Delta: delta})
		}
		h.LastPointerPos = f32.Vec2{e.X, e.Y}
	case EventScroll:
		r.Camera.Scroll(e.DY)
		h.notify(CameraEvent{Kind: CameraZoomed, Pos: r.Camera.Pos, Zoom: r.Camera.Zoom, DY: e.DY})
	case EventButtonPress, EventButtonRelease:
		down := e.Kind == EventButtonPress
		switch e.Button {
		case MouseButtonLeft:
			h.Button1Down = down
		case MouseButtonRight:
			h.Button2Down = down
		default:
			return
		}
	default:
		return
	}
	h.FirstFrame = false
}

func (h *InputHandler) notify(e CameraEvent) {
	if h.observer != nil {
		h.observer.CameraChanged(e)
	}
}
