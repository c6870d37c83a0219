package wirecanvas

import "github.com/hajimehoshi/ebiten/v2"

// polledButtons maps ebiten buttons to the buttons reported in events.
var polledButtons = [...]struct {
	eb  ebiten.MouseButton
	btn MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// inputState is one tick's worth of polled input.
type inputState struct {
	closing          bool
	width, height    int
	cursorX, cursorY int
	pressed          [len(polledButtons)]bool
	wheelY           float64
}

// readInput polls ebiten. Must be called from the Update goroutine.
func readInput() inputState {
	var in inputState
	in.closing = ebiten.IsWindowBeingClosed()
	in.width, in.height = ebiten.WindowSize()
	in.cursorX, in.cursorY = ebiten.CursorPosition()
	for i, b := range polledButtons {
		in.pressed[i] = ebiten.IsMouseButtonPressed(b.eb)
	}
	_, in.wheelY = ebiten.Wheel()
	return in
}

// EventSource turns ebiten's polled input state into an ordered event queue,
// once per tick. Injected events take priority over real input.
type EventSource struct {
	injectQueue []Event

	// State as of the last tick real input was reported. Buttons are
	// compared by level, so a press or release that happens while injected
	// events are being delivered is still reported afterwards.
	havePointer  bool
	lastX, lastY int
	lastW, lastH int
	pressed      [len(polledButtons)]bool
	resync       bool
}

// NewEventSource creates an event source. It must be polled from the ebiten
// Update goroutine.
func NewEventSource() *EventSource {
	return &EventSource{}
}

// Poll appends this tick's events to dst[:0] and returns it.
//
// A close request is always reported first. If injected events are pending,
// exactly one is delivered and real input is held back for the tick.
// Otherwise real input is reported as: resize, button presses, pointer move,
// button releases, scroll. Presses precede the move so a press-and-drag
// within one tick pans immediately. On the first real tick after injection
// the pointer position is always reported, after any releases.
func (s *EventSource) Poll(dst []Event) []Event {
	return s.events(dst, readInput())
}

// events builds the event list for one tick from in.
func (s *EventSource) events(dst []Event, in inputState) []Event {
	dst = dst[:0]

	if in.closing {
		dst = append(dst, Event{Kind: EventClose})
	}

	if evt, ok := s.popInjected(); ok {
		// The handler now holds an injected pointer position; report the
		// real one again once injection ends.
		s.havePointer = false
		s.resync = true
		return append(dst, evt)
	}

	if in.width != s.lastW || in.height != s.lastH {
		if s.lastW != 0 || s.lastH != 0 {
			dst = append(dst, Event{Kind: EventResize, Width: in.width, Height: in.height})
		}
		s.lastW, s.lastH = in.width, in.height
	}

	for i, b := range polledButtons {
		if in.pressed[i] && !s.pressed[i] {
			dst = append(dst, Event{Kind: EventButtonPress, Button: b.btn})
		}
	}

	// On the first tick after injection, releases go before the re-sync
	// move so a button let go during injection cannot pan across the jump.
	resync := s.resync
	s.resync = false
	if resync {
		dst = s.appendReleases(dst, in)
	}

	if !s.havePointer || in.cursorX != s.lastX || in.cursorY != s.lastY {
		dst = append(dst, Event{Kind: EventPointerMove, X: float32(in.cursorX), Y: float32(in.cursorY)})
		s.havePointer = true
		s.lastX, s.lastY = in.cursorX, in.cursorY
	}

	if !resync {
		dst = s.appendReleases(dst, in)
	}
	s.pressed = in.pressed

	// Wheel movement has no level to compare against, so it is lost if it
	// arrives during injection.
	if in.wheelY != 0 {
		dst = append(dst, Event{Kind: EventScroll, DY: float32(in.wheelY)})
	}
	return dst
}

func (s *EventSource) appendReleases(dst []Event, in inputState) []Event {
	for i, b := range polledButtons {
		if !in.pressed[i] && s.pressed[i] {
			dst = append(dst, Event{Kind: EventButtonRelease, Button: b.btn})
		}
	}
	return dst
}

// Pending returns the number of injected events not yet delivered.
func (s *EventSource) Pending() int {
	return len(s.injectQueue)
}
