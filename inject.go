package wirecanvas

// Inject queues a synthetic event. Queued events are delivered one per
// Poll, ahead of real input.
func (s *EventSource) Inject(e Event) {
	s.injectQueue = append(s.injectQueue, e)
}

// InjectMove queues a pointer move to (x, y).
func (s *EventSource) InjectMove(x, y float32) {
	s.Inject(Event{Kind: EventPointerMove, X: x, Y: y})
}

// InjectPress queues a press of button.
func (s *EventSource) InjectPress(button MouseButton) {
	s.Inject(Event{Kind: EventButtonPress, Button: button})
}

// InjectRelease queues a release of button.
func (s *EventSource) InjectRelease(button MouseButton) {
	s.Inject(Event{Kind: EventButtonRelease, Button: button})
}

// InjectScroll queues a vertical scroll of dy lines.
func (s *EventSource) InjectScroll(dy float32) {
	s.Inject(Event{Kind: EventScroll, DY: dy})
}

// InjectPan queues a full secondary-button drag: move to (fromX, fromY),
// press, linearly interpolated moves over frames-2 intermediate frames, a
// final move to (toX, toY) and release. Minimum frames is 2.
func (s *EventSource) InjectPan(fromX, fromY, toX, toY float32, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectMove(fromX, fromY)
	s.InjectPress(MouseButtonRight)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectMove(toX, toY)
	s.InjectRelease(MouseButtonRight)
}

// popInjected removes and returns the oldest injected event.
func (s *EventSource) popInjected() (Event, bool) {
	if len(s.injectQueue) == 0 {
		return Event{}, false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	return evt, true
}
