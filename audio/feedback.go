package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/stardrift/core"
)

const speakerBuffer = 50 * time.Millisecond

// Feedback plays short clicks for user actions
// Without a successful Init, or while disabled, every Play is a silent no-op
type Feedback struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	played      uint64
}

// NewFeedback creates a feedback player, Init must be called before sounds are audible
func NewFeedback(cfg Config) *Feedback {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	return &Feedback{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker, disabled feedback skips the device entirely
func (f *Feedback) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized || !f.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(f.rate, f.rate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(f.mixer)
	f.initialized = true
	core.Logger().Info("audio feedback ready", "rate", int(f.rate), "volume", f.cfg.Volume)
	return nil
}

// SetEnabled toggles feedback without reopening the device
func (f *Feedback) SetEnabled(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cfg.Enabled = enabled
	if !enabled {
		f.clear()
	}
}

// Enabled reports whether clicks are requested
func (f *Feedback) Enabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cfg.Enabled
}

// Play queues one click
func (f *Feedback) Play(kind ClickKind) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized || !f.cfg.Enabled {
		return
	}
	s, err := NewClick(kind, f.rate, f.cfg.Volume)
	if err != nil {
		core.Logger().Warn("click dropped", "kind", kind, "error", err)
		return
	}
	f.add(s)
	f.played++
}

// Played returns the number of clicks queued since creation
func (f *Feedback) Played() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.played
}

// add routes through the speaker lock once the device owns the mixer
func (f *Feedback) add(s beep.Streamer) {
	speaker.Lock()
	f.mixer.Add(s)
	speaker.Unlock()
}

func (f *Feedback) clear() {
	if !f.initialized {
		return
	}
	speaker.Lock()
	f.mixer.Clear()
	speaker.Unlock()
}

// Close silences pending clicks and releases the device
func (f *Feedback) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return
	}
	f.clear()
	speaker.Close()
	f.initialized = false
}
