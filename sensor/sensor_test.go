package sensor

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/stardrift/parallax"
	"github.com/lixenwraith/stardrift/parameter"
)

type recorder struct {
	mu      sync.Mutex
	samples []Sample
}

func (r *recorder) Push(s Sample) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, s)
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.samples)
}

func TestPumpNilSource(t *testing.T) {
	if err := Pump(context.Background(), nil, &recorder{}); err != nil {
		t.Errorf("nil source: %v", err)
	}
}

func TestPumpStopsOnClose(t *testing.T) {
	m := NewManual()
	rec := &recorder{}

	done := make(chan error, 1)
	go func() { done <- Pump(context.Background(), m, rec) }()

	m.Nudge(1, 0)
	deadline := time.Now().Add(2 * time.Second)
	for rec.len() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	m.Close()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Pump after close = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Pump did not return after Close")
	}
	if rec.len() != 1 {
		t.Errorf("forwarded %d samples, want 1", rec.len())
	}
}

func TestPumpStopsOnCancel(t *testing.T) {
	m := NewManual()
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Pump(ctx, m, &recorder{}) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Pump after cancel = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Pump did not return after cancel")
	}
}

func TestManualClampsTilt(t *testing.T) {
	m := NewManual()
	defer m.Close()

	for i := 0; i < 100; i++ {
		m.Nudge(parameter.ManualNudgeStep, -parameter.ManualNudgeStep)
	}
	got := m.Attitude()
	if got.Pitch != parameter.ManualMaxTilt || got.Roll != -parameter.ManualMaxTilt {
		t.Errorf("attitude = %+v, want ±%v", got, parameter.ManualMaxTilt)
	}

	// Only the latest reading is buffered
	select {
	case s := <-m.Samples():
		if s != got {
			t.Errorf("buffered sample = %+v, want %+v", s, got)
		}
	default:
		t.Fatal("expected a buffered sample")
	}

	m.Level()
	if a := m.Attitude(); a != (Sample{}) {
		t.Errorf("after Level attitude = %+v", a)
	}
}

func TestManualCloseIdempotent(t *testing.T) {
	m := NewManual()
	m.Close()
	m.Close()
	m.Nudge(1, 1) // must not panic on closed channel
	if _, ok := <-m.Samples(); ok {
		t.Error("samples channel should be closed")
	}
}

func TestWobbleAt(t *testing.T) {
	amp := parameter.WobbleAmplitude
	if s := WobbleAt(0, amp); s.Pitch != 0 || s.Roll != 0 {
		t.Errorf("WobbleAt(0) = %+v, want level", s)
	}
	q := WobbleAt(parameter.WobblePeriod/4, amp)
	if math.Abs(q.Pitch-amp) > 1e-9 {
		t.Errorf("quarter period pitch = %v, want %v", q.Pitch, amp)
	}
	for i := 0; i < 1000; i++ {
		s := WobbleAt(float64(i)*0.01, amp)
		if math.Abs(s.Pitch) > amp+1e-9 || math.Abs(s.Roll) > amp/2+1e-9 {
			t.Fatalf("sample %d out of amplitude: %+v", i, s)
		}
	}
}

func TestWobbleFeedsTracker(t *testing.T) {
	w := NewWobble(500, parameter.WobbleAmplitude)
	tr := parallax.NewTracker(true)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- Pump(ctx, w, tr) }()

	for tr.Phase() != parallax.PhaseCalibrated {
		if ctx.Err() != nil {
			t.Fatalf("tracker not calibrated, %d samples", tr.Samples())
		}
		time.Sleep(2 * time.Millisecond)
	}

	w.Close()
	if err := <-done; err != nil {
		t.Errorf("Pump = %v, want nil after source close", err)
	}
}
