package magnetic

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action   string  `json:"action"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Duration float32 `json:"duration,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences synthetic pointer moves and scrolls across frames for
// automated runs of a scene. Supported actions:
//
//	{"action": "move", "x": 540, "y": 500}
//	{"action": "path", "fromX": 0, "fromY": 0, "toX": 500, "toY": 500, "frames": 30}
//	{"action": "wait", "frames": 60}
//	{"action": "scroll", "x": 0, "y": 200, "duration": 0.5}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script.
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
		case "move", "path", "wait", "scroll":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame. Hosts call it once per frame before
// consuming pointer input.
func (r *TestRunner) Step(ptr *PointerTracker, doc *Document) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if ptr.Pending() > 0 {
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
	case "move":
		ptr.InjectMove(st.X, st.Y)
	case "path":
		ptr.InjectPath(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "scroll":
		if doc == nil {
			break
		}
		if st.Duration > 0 {
			doc.ScrollTo(st.X, st.Y, st.Duration, nil)
		} else {
			doc.ScrollBy(st.X-doc.ScrollX, st.Y-doc.ScrollY)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && ptr.Pending() == 0 {
		r.done = true
	}
}
