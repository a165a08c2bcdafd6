package scratchoff

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "scratch-row", "row": 2},
			{"action": "wait", "frames": 3},
			{"action": "screenshot", "label": "after-scratch"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "scratch-row" || runner.steps[1].Row != 2 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadTestScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`},
		{"row below range", `{"steps": [{"action": "scratch-row", "row": -1}]}`},
		{"row above range", `{"steps": [{"action": "scratch-row", "row": 6}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestRunnerStep_ScratchRow(t *testing.T) {
	s := newTestScene()

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "scratch-row", "row": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	runner.step(s)
	if len(s.injectQueue) != Width+1 {
		t.Fatalf("expected %d queued events, got %d", Width+1, len(s.injectQueue))
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	drain(s)

	runner.step(s)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
	if want := "Fe It'd be a dream to work with you. eF"; s.card.Glyphs().Lines()[3] != want {
		t.Errorf("row 3 = %q, want %q", s.card.Glyphs().Lines()[3], want)
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	s := newTestScene()

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	// Frame 1: consumes the wait step and sets waitCount=2.
	runner.step(s)
	if runner.Done() {
		t.Error("should not be done after frame 1")
	}
	// Frames 2 and 3 count down.
	runner.step(s)
	runner.step(s)
	if runner.Done() {
		t.Error("should not be done while waiting")
	}
	runner.step(s)
	if !runner.Done() {
		t.Error("should be done after wait completes")
	}
}

func TestRunnerStep_PressMoveRelease(t *testing.T) {
	s := newTestScene()
	x0, y := s.CellCenter(4, 4)
	x1, _ := s.CellCenter(5, 4)

	runner := &TestRunner{steps: []testStep{
		{Action: actionPress, X: x0, Y: y},
		{Action: actionMove, X: x1, Y: y},
		{Action: actionRelease, X: x1, Y: y},
	}}
	s.SetTestRunner(runner)

	for i := 0; i < 10 && !runner.Done(); i++ {
		runner.step(s)
		s.processInput()
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if s.card.Revealed(4*Width + 4) {
		t.Error("press cell should stay hidden")
	}
	if !s.card.Revealed(4*Width + 5) {
		t.Error("moved-to cell should be revealed")
	}
	if s.card.Down() {
		t.Error("latch should be up after release")
	}
}

func TestRunnerStep_Screenshot(t *testing.T) {
	s := newTestScene()
	runner := &TestRunner{steps: []testStep{{Action: actionScreenshot, Label: "before"}}}
	s.SetTestRunner(runner)

	runner.step(s)
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "before" {
		t.Errorf("screenshot queue = %v, want [before]", s.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done after its only step")
	}
}
