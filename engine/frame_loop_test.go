package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/stardrift/config"
	"github.com/lixenwraith/stardrift/parameter"
)

type loopHarness struct {
	loop    *FrameLoop
	source  *ManualTicks
	states  chan RenderState
	sources int
}

func newLoopHarness(t *testing.T) *loopHarness {
	t.Helper()
	a, _ := newTestAnimator(t, config.Default(), 12, 0)
	h := &loopHarness{states: make(chan RenderState, 16)}
	h.loop = NewFrameLoop(a, func() TickSource {
		h.sources++
		h.source = NewManualTicks()
		return h.source
	}, SinkFunc(func(s RenderState) { h.states <- s }))
	return h
}

func (h *loopHarness) tick(t *testing.T, nanos int64) RenderState {
	t.Helper()
	if !h.source.Tick(nanos) {
		t.Fatal("tick rejected by stopped source")
	}
	select {
	case s := <-h.states:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for frame")
		return RenderState{}
	}
}

func TestFrameLoopRunsFrames(t *testing.T) {
	h := newLoopHarness(t)
	h.loop.Start()
	defer h.loop.Stop()

	if !h.loop.Running() {
		t.Fatal("loop should be running after Start")
	}

	first := h.tick(t, 0)
	if first.Delta != parameter.NominalFrameDelta {
		t.Errorf("first delta = %v, want nominal", first.Delta)
	}
	second := h.tick(t, tick)
	if second.Frame != first.Frame+1 {
		t.Errorf("frame numbers %d -> %d", first.Frame, second.Frame)
	}
	if h.loop.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", h.loop.Frames())
	}
}

func TestFrameLoopStartIsIdempotent(t *testing.T) {
	h := newLoopHarness(t)
	h.loop.Start()
	h.loop.Start()
	defer h.loop.Stop()

	if h.sources != 1 {
		t.Errorf("second Start created another source (%d)", h.sources)
	}
}

func TestFrameLoopStopCancelsImmediately(t *testing.T) {
	h := newLoopHarness(t)
	h.loop.Start()
	h.tick(t, 0)

	done := make(chan struct{})
	go func() {
		h.loop.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}

	if h.loop.Running() {
		t.Error("loop still running after Stop")
	}
	if h.source.Tick(tick) {
		t.Error("stopped source accepted a tick")
	}

	// Second Stop is a no-op
	h.loop.Stop()
}

func TestFrameLoopRestartResetsFrameHistory(t *testing.T) {
	h := newLoopHarness(t)
	h.loop.Start()
	h.tick(t, 0)
	h.tick(t, tick)
	h.loop.Stop()

	h.loop.Start()
	defer h.loop.Stop()
	if h.sources != 2 {
		t.Fatalf("restart should build a fresh source, got %d", h.sources)
	}

	// Far-future timestamp would clamp to MaxFrameDelta with stale history
	state := h.tick(t, int64(10*time.Minute))
	if state.Delta != parameter.NominalFrameDelta {
		t.Errorf("delta after restart = %v, want nominal", state.Delta)
	}
}

func TestFrameLoopStopBeforeStart(t *testing.T) {
	h := newLoopHarness(t)
	h.loop.Stop()
	if h.loop.Running() {
		t.Error("never-started loop reports running")
	}
}

func TestTickerSource(t *testing.T) {
	src := NewTickerSource(time.Millisecond)
	defer src.Stop()

	var last int64 = -1
	for i := 0; i < 3; i++ {
		select {
		case n := <-src.Ticks():
			if n <= last {
				t.Errorf("tick %d not increasing: %d after %d", i, n, last)
			}
			last = n
		case <-time.After(time.Second):
			t.Fatal("ticker source produced no tick")
		}
	}

	src.Stop()
	src.Stop()
}
