package wirecanvas

import "golang.org/x/image/math/f32"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to ebiten.
type Color struct {
	R, G, B, A float64
}

// DefaultClearColor is the dark background the canvas window is cleared to
// before each frame.
var DefaultClearColor = Color{0.05, 0.05, 0.05, 1}

// FillColor is the light gray every view quad is filled with.
var FillColor = f32.Vec4{0.9, 0.9, 0.9, 1}

// toRGBA converts a Color to a color.RGBA-compatible value (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle in canvas space. The coordinate system
// has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float32
}

// EventKind identifies a kind of raw input event.
type EventKind uint8

const (
	EventPointerMove   EventKind = iota // pointer moved to (X, Y)
	EventScroll                         // vertical wheel movement DY
	EventButtonPress                    // Button went down
	EventButtonRelease                  // Button went up
	EventClose                          // window close requested
	EventResize                         // window resized to Width x Height
)

func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "pointer-move"
	case EventScroll:
		return "scroll"
	case EventButtonPress:
		return "button-press"
	case EventButtonRelease:
		return "button-release"
	case EventClose:
		return "close"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Event is a single raw input event, as produced by an EventSource or
// injected by a script.
type Event struct {
	Kind EventKind
	// X and Y are the pointer position for EventPointerMove.
	X, Y float32
	// DY is the vertical scroll amount for EventScroll, in lines.
	DY float32
	// Button is set for EventButtonPress and EventButtonRelease.
	Button MouseButton
	// Width and Height are set for EventResize.
	Width, Height int
}
