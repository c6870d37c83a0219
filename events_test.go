package wirecanvas

import (
	"reflect"
	"testing"
)

const (
	leftIdx = iota
	rightIdx
	middleIdx
)

func idleInput() inputState {
	return inputState{width: 800, height: 600, cursorX: 10, cursorY: 10}
}

// primedSource returns a source that has already reported idleInput once.
func primedSource() *EventSource {
	s := NewEventSource()
	s.events(nil, idleInput())
	return s
}

func TestEventsFirstTick(t *testing.T) {
	s := NewEventSource()
	got := s.events(nil, idleInput())
	want := []Event{{Kind: EventPointerMove, X: 10, Y: 10}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("first tick = %+v, want %+v", got, want)
	}

	// Nothing changed: no events.
	if got := s.events(nil, idleInput()); len(got) != 0 {
		t.Errorf("idle tick = %+v, want none", got)
	}
}

func TestEventsOrdering(t *testing.T) {
	s := primedSource()
	held := idleInput()
	held.pressed[leftIdx] = true
	s.events(nil, held)

	in := idleInput()
	in.width, in.height = 1024, 768
	in.pressed[rightIdx] = true
	in.cursorX, in.cursorY = 40, 50
	in.wheelY = 1

	got := s.events(nil, in)
	want := []Event{
		{Kind: EventResize, Width: 1024, Height: 768},
		{Kind: EventButtonPress, Button: MouseButtonRight},
		{Kind: EventPointerMove, X: 40, Y: 50},
		{Kind: EventButtonRelease, Button: MouseButtonLeft},
		{Kind: EventScroll, DY: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events =\n%+v\nwant\n%+v", got, want)
	}
}

func TestEventsHeldButtonReportedOnce(t *testing.T) {
	s := primedSource()
	in := idleInput()
	in.pressed[middleIdx] = true

	got := s.events(nil, in)
	if len(got) != 1 || got[0].Kind != EventButtonPress || got[0].Button != MouseButtonMiddle {
		t.Fatalf("press tick = %+v", got)
	}
	if got := s.events(nil, in); len(got) != 0 {
		t.Errorf("held tick = %+v, want none", got)
	}
}

func TestEventsCloseFirst(t *testing.T) {
	tests := []struct {
		name   string
		inject bool
		want   []Event
	}{
		{"with real input", false, []Event{
			{Kind: EventClose},
			{Kind: EventPointerMove, X: 99, Y: 10},
		}},
		{"with injected input", true, []Event{
			{Kind: EventClose},
			{Kind: EventScroll, DY: 2},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := primedSource()
			if tt.inject {
				s.InjectScroll(2)
			}
			in := idleInput()
			in.closing = true
			in.cursorX = 99
			got := s.events(nil, in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("events = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEventsInjectedMasksRealInput(t *testing.T) {
	s := primedSource()
	s.InjectMove(300, 300)
	s.InjectMove(310, 310)

	in := idleInput()
	in.pressed[rightIdx] = true
	in.cursorX = 20
	in.wheelY = 3

	for i, wantX := range []float32{300, 310} {
		got := s.events(nil, in)
		want := []Event{{Kind: EventPointerMove, X: wantX, Y: wantX}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("tick %d = %+v, want %+v", i, got, want)
		}
	}

	// The press held during injection is reported once injection ends, and
	// the real pointer is re-synced.
	in.wheelY = 0
	got := s.events(nil, in)
	want := []Event{
		{Kind: EventButtonPress, Button: MouseButtonRight},
		{Kind: EventPointerMove, X: 20, Y: 10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("after injection = %+v, want %+v", got, want)
	}
}

func TestEventsPointerResyncAfterInjection(t *testing.T) {
	s := primedSource()
	s.InjectMove(500, 500)
	s.events(nil, idleInput())

	// The real cursor has not moved, but the handler last saw (500, 500).
	got := s.events(nil, idleInput())
	want := []Event{{Kind: EventPointerMove, X: 10, Y: 10}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events = %+v, want %+v", got, want)
	}
}

func TestEventsReleaseDuringInjectionStopsPanning(t *testing.T) {
	s := primedSource()
	h := NewInputHandler()
	r := newTestRenderer()
	apply := func(in inputState) {
		for _, e := range s.events(nil, in) {
			h.HandleEvent(r, e)
		}
	}

	apply(idleInput())
	held := idleInput()
	held.pressed[rightIdx] = true
	apply(held)
	if !h.Button2Down {
		t.Fatal("secondary press not delivered")
	}

	// Released while a scripted scroll is being delivered.
	s.InjectScroll(1)
	apply(idleInput())
	apply(idleInput())
	if h.Button2Down {
		t.Fatal("release during injection was lost")
	}

	hover := idleInput()
	hover.cursorX, hover.cursorY = 200, 200
	apply(hover)
	if r.Camera.Pos[0] != 0 || r.Camera.Pos[1] != 0 {
		t.Errorf("camera panned to %v after the button was released", r.Camera.Pos)
	}
}

func TestEventsReleaseBeforeResyncMove(t *testing.T) {
	s := primedSource()
	held := idleInput()
	held.pressed[rightIdx] = true
	s.events(nil, held)

	s.InjectScroll(1)
	s.events(nil, idleInput())

	got := s.events(nil, idleInput())
	want := []Event{
		{Kind: EventButtonRelease, Button: MouseButtonRight},
		{Kind: EventPointerMove, X: 10, Y: 10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events = %+v, want %+v", got, want)
	}

	// Later ticks use the normal order again.
	next := idleInput()
	next.pressed[leftIdx] = true
	next.cursorX = 30
	got = s.events(nil, next)
	want = []Event{
		{Kind: EventButtonPress, Button: MouseButtonLeft},
		{Kind: EventPointerMove, X: 30, Y: 10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events = %+v, want %+v", got, want)
	}
}
