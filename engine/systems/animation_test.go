package systems

import (
	"testing"

	"github.com/spaghettifunk/ombra/engine/resources"
)

func walkFrames(fps float64, count int, loop bool) *resources.FrameData {
	return &resources.FrameData{
		FrameWidth:  32,
		FrameHeight: 48,
		FrameCount:  count,
		Columns:     count,
		FPS:         fps,
		Loop:        loop,
	}
}

func TestAnimationStateLoadResetsPlayback(t *testing.T) {
	bounds := &resources.FrameBounds{}
	state := NewAnimationState(bounds)

	state.LoadFrameData(walkFrames(10, 4, true))

	if !state.HasFrameData() {
		t.Fatal("frame data should be loaded")
	}
	if state.CurrentFrame() != 0 {
		t.Errorf("playback must restart at frame 0, got %d", state.CurrentFrame())
	}
	if !state.Playing() {
		t.Error("multi-frame data with a positive FPS should start playing")
	}
	if bounds.Width != 32 || bounds.Height != 48 {
		t.Errorf("frame cell size not propagated, got (%d, %d)", bounds.Width, bounds.Height)
	}
}

func TestAnimationStateUpdateAdvancesFrames(t *testing.T) {
	tests := []struct {
		name      string
		fps       float64
		count     int
		loop      bool
		delta     float64
		steps     int
		wantFrame int
		wantPlay  bool
	}{
		{"one step", 10, 4, true, 0.1, 1, 1, true},
		{"sub-frame accumulates", 10, 4, true, 0.05, 3, 1, true},
		{"loop wraps", 10, 4, true, 0.1, 5, 1, true},
		{"non-loop clamps on last", 10, 4, false, 0.1, 10, 3, false},
		{"large delta catches up", 10, 4, true, 0.35, 1, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewAnimationState(nil)
			state.LoadFrameData(walkFrames(tt.fps, tt.count, tt.loop))

			for i := 0; i < tt.steps; i++ {
				state.Update(tt.delta)
			}

			if state.CurrentFrame() != tt.wantFrame {
				t.Errorf("expected frame %d, got %d", tt.wantFrame, state.CurrentFrame())
			}
			if state.Playing() != tt.wantPlay {
				t.Errorf("expected playing=%t, got %t", tt.wantPlay, state.Playing())
			}
		})
	}
}

func TestAnimationStateDiscard(t *testing.T) {
	state := NewAnimationState(nil)
	state.LoadFrameData(walkFrames(10, 4, true))
	state.Update(0.25)

	state.DiscardFrameData()

	if state.HasFrameData() {
		t.Error("discard must drop frame data")
	}
	if state.Playing() {
		t.Error("discard must halt playback")
	}
	if got := state.CurrentRect(); got != (resources.FrameRect{}) {
		t.Errorf("discarded state must report the zero rect, got %+v", got)
	}

	// Discard with nothing loaded is a no-op.
	state.DiscardFrameData()
}

func TestAnimationStateCurrentRect(t *testing.T) {
	state := NewAnimationState(nil)
	state.LoadFrameData(walkFrames(10, 4, true))
	state.Update(0.2)

	want := resources.FrameRect{X: 64, Y: 0, Width: 32, Height: 48}
	if got := state.CurrentRect(); got != want {
		t.Errorf("expected rect %+v, got %+v", want, got)
	}
}

func TestAnimationStateAttachBoundsLate(t *testing.T) {
	state := NewAnimationState(nil)
	state.LoadFrameData(walkFrames(10, 4, true))

	bounds := &resources.FrameBounds{}
	state.AttachBounds(bounds)

	if bounds.Width != 32 || bounds.Height != 48 {
		t.Errorf("late attach must re-sync the cell size, got (%d, %d)", bounds.Width, bounds.Height)
	}
}

func TestAnimationStateSingleFrameDoesNotPlay(t *testing.T) {
	state := NewAnimationState(nil)
	state.LoadFrameData(walkFrames(10, 1, true))

	if state.Playing() {
		t.Error("a single-frame sheet has nothing to animate")
	}
	state.Update(1.0)
	if state.CurrentFrame() != 0 {
		t.Errorf("single frame must stay put, got %d", state.CurrentFrame())
	}
}

func TestAnimationSystemUpdatesAllStates(t *testing.T) {
	asys, err := NewAnimationSystem()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := asys.CreateState(nil)
	b := asys.CreateState(nil)
	a.LoadFrameData(walkFrames(10, 4, true))
	b.LoadFrameData(walkFrames(5, 2, true))

	asys.Update(0.2)

	if a.CurrentFrame() != 2 {
		t.Errorf("state a expected frame 2, got %d", a.CurrentFrame())
	}
	if b.CurrentFrame() != 1 {
		t.Errorf("state b expected frame 1, got %d", b.CurrentFrame())
	}

	if err := asys.Shutdown(); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}
}
