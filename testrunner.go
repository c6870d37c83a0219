package wirecanvas

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Button string  `json:"button,omitempty"`
	X      float32 `json:"x,omitempty"`
	Y      float32 `json:"y,omitempty"`
	DY     float32 `json:"dy,omitempty"`
	FromX  float32 `json:"fromX,omitempty"`
	FromY  float32 `json:"fromY,omitempty"`
	ToX    float32 `json:"toX,omitempty"`
	ToY    float32 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input events and screenshots across frames
// for automated visual testing. Attach to a Game via SetTestRunner.
//
// Supported actions: move (x, y), press / release (button: "left" or
// "right"), scroll (dy), pan (fromX, fromY, toX, toY, frames), wait
// (frames) and screenshot (label).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Game.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "scroll", "pan", "wait", "screenshot":
		case "press", "release":
			if _, err := parseButton(st.Button); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func parseButton(name string) (MouseButton, error) {
	switch name {
	case "", "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	default:
		return 0, fmt.Errorf("unknown button %q", name)
	}
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Game.Update before
// events are polled.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	src := g.source
	// Wait for pending injections to drain before advancing.
	if src.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		g.Screenshot(st.Label)
	case "move":
		src.InjectMove(st.X, st.Y)
	case "press":
		b, _ := parseButton(st.Button)
		src.InjectPress(b)
	case "release":
		b, _ := parseButton(st.Button)
		src.InjectRelease(b)
	case "scroll":
		src.InjectScroll(st.DY)
	case "pan":
		src.InjectPan(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && src.Pending() == 0 {
		r.done = true
	}
}
