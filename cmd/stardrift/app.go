package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stardrift/audio"
	"github.com/lixenwraith/stardrift/config"
	"github.com/lixenwraith/stardrift/core"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/input"
	"github.com/lixenwraith/stardrift/parallax"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/render"
	"github.com/lixenwraith/stardrift/sensor"
	"github.com/lixenwraith/stardrift/vmath"
)

const (
	cellPixelsX = 8
	cellPixelsY = 16
)

// app wires the animation core to the terminal, keyboard and audio
// Intents are handled on the main goroutine, frames on the loop goroutine
type app struct {
	screen   tcell.Screen
	animator *engine.Animator
	loop     *engine.FrameLoop
	renderer *render.TerminalRenderer
	feedback *audio.Feedback
	keys     *input.KeyTable

	manual       *sensor.Manual
	wobble       *sensor.Wobble
	wobbling     atomic.Bool
	cancelSensor context.CancelFunc
	pumps        sync.WaitGroup

	snapshotDir string
	calibrated  bool // touched only by the loop goroutine

	lastMu sync.Mutex
	last   engine.RenderState
}

func newApp(screen tcell.Screen, cfg config.Config, keys *input.KeyTable, feedback *audio.Feedback, opts ...engine.AnimatorOption) *app {
	cfg.Normalize()

	a := &app{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen, render.MustTheme(cfg.Theme)),
		feedback: feedback,
		keys:     keys,
		manual:   sensor.NewManual(),
	}

	w, h := a.renderer.FieldSize()
	opts = append(opts, engine.WithViewport(float64(w), float64(h)))
	a.animator = engine.NewAnimator(cfg, opts...)

	interval := time.Second / time.Duration(cfg.FPS)
	a.loop = engine.NewFrameLoop(a.animator, func() engine.TickSource {
		return engine.NewTickerSource(interval)
	}, engine.SinkFunc(a.onFrame))

	ctx, cancel := context.WithCancel(context.Background())
	a.cancelSensor = cancel
	a.pump(ctx, a.manual)

	a.feedback.SetEnabled(cfg.Haptics)
	return a
}

// pump forwards a source into the tracker until ctx ends or the source closes
func (a *app) pump(ctx context.Context, src sensor.Source) {
	a.pumps.Add(1)
	core.Go(func() {
		defer a.pumps.Done()
		_ = sensor.Pump(ctx, src, a.animator.Tracker())
	})
}

// onFrame runs on the loop goroutine
func (a *app) onFrame(state engine.RenderState) {
	phase := a.animator.Tracker().Phase()
	if phase == parallax.PhaseCalibrated && !a.calibrated {
		a.feedback.Play(audio.ClickCalibrated)
	}
	a.calibrated = phase == parallax.PhaseCalibrated

	cfg := a.animator.Config()
	a.renderer.SetStatus(statusLine(cfg, phase, a.wobbling.Load(), state), cfg.Parallax && phase != parallax.PhaseCalibrated)
	a.renderer.Render(state)

	a.lastMu.Lock()
	particles := append(a.last.Particles[:0], state.Particles...)
	a.last = state
	a.last.Particles = particles
	a.lastMu.Unlock()
}

func (a *app) start() {
	a.loop.Start()
}

// close stops the loop and every sensor goroutine
func (a *app) close() {
	a.loop.Stop()
	a.cancelSensor()
	if a.wobble != nil {
		a.wobble.Close()
	}
	a.manual.Close()
	a.pumps.Wait()
}

// handleEvent returns false when the app should exit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handle(a.keys.Lookup(ev))
	case *tcell.EventResize:
		a.screen.Sync()
		w, h := a.renderer.FieldSize()
		a.animator.SetViewport(float64(w), float64(h))
	}
	return true
}

// handle applies one intent, returns false on quit
func (a *app) handle(intent input.IntentType) bool {
	cfg := a.animator.Config()
	click := audio.ClickToggle

	switch intent {
	case input.IntentNone:
		return true
	case input.IntentQuit:
		return false

	case input.IntentPause:
		if a.loop.Running() {
			a.loop.Stop()
		} else {
			a.loop.Start()
		}
	case input.IntentSnapshot:
		a.snapshot()

	case input.IntentToggleParallax:
		cfg.Parallax = !cfg.Parallax
	case input.IntentCycleSpeed:
		cfg.SpeedTier = (cfg.SpeedTier + 1) % (config.MaxTier + 1)
		click = audio.ClickTier
	case input.IntentCycleSensitivity:
		cfg.SensitivityTier = (cfg.SensitivityTier + 1) % (config.MaxTier + 1)
		click = audio.ClickTier
	case input.IntentCycleDensity:
		cfg.Density = config.NextDensity(cfg.Density)
		click = audio.ClickTier
	case input.IntentToggleTime:
		cfg.TimeMode = !cfg.TimeMode
	case input.IntentToggleStars:
		cfg.StarMode = !cfg.StarMode
	case input.IntentToggleOLED:
		cfg.Theme.OLED = !cfg.Theme.OLED
	case input.IntentToggleHaptics:
		cfg.Haptics = !cfg.Haptics

	case input.IntentOffsetBack, input.IntentOffsetForward:
		step := parameter.TimeOffsetStep
		if intent == input.IntentOffsetBack {
			step = -step
		}
		next := vmath.Clamp(cfg.TimeOffsetHours+step, parameter.MinTimeOffsetHours, parameter.MaxTimeOffsetHours)
		if next == cfg.TimeOffsetHours {
			click = audio.ClickEdge
		}
		cfg.TimeOffsetHours = next

	case input.IntentTiltUp, input.IntentTiltDown, input.IntentTiltLeft, input.IntentTiltRight:
		before := a.manual.Attitude()
		after := a.manual.Nudge(tiltDelta(intent))
		if before == after {
			click = audio.ClickEdge
		}
	case input.IntentLevel:
		a.manual.Level()
	case input.IntentToggleWobble:
		a.toggleWobble()
	}

	a.apply(cfg)
	a.feedback.Play(click)
	return true
}

// apply pushes a changed configuration to every component
func (a *app) apply(cfg config.Config) {
	a.animator.SetConfig(cfg)
	a.renderer.SetTheme(render.MustTheme(cfg.Theme))
	a.feedback.SetEnabled(cfg.Haptics)
}

func (a *app) toggleWobble() {
	if a.wobble != nil {
		a.wobble.Close()
		a.wobble = nil
		a.wobbling.Store(false)
		return
	}
	a.wobble = sensor.NewWobble(parameter.WobbleSampleRate, parameter.WobbleAmplitude)
	a.wobbling.Store(true)
	a.pump(context.Background(), a.wobble)
}

// snapshot writes the last rendered frame to a PNG, one cell maps to an 8x16 pixel block
func (a *app) snapshot() {
	a.lastMu.Lock()
	state := a.last
	state.Particles = append([]engine.Sprite(nil), a.last.Particles...)
	a.lastMu.Unlock()

	w, h := a.renderer.FieldSize()
	r := render.NewSnapshotRenderer(w*cellPixelsX, h*cellPixelsY, render.MustTheme(a.animator.Config().Theme))
	if state.Celestial != nil {
		b := *state.Celestial
		b.X, b.Y = b.X*cellPixelsX, b.Y*cellPixelsY
		state.Celestial = &b
	}
	r.Caption = render.SnapshotCaption(state)

	path := filepath.Join(a.snapshotDir, fmt.Sprintf("stardrift-%s.png", time.Now().Format("20060102-150405")))
	if err := r.Save(path, state); err != nil {
		core.Logger().Warn("snapshot failed", "path", path, "error", err)
		a.feedback.Play(audio.ClickEdge)
		return
	}
	core.Logger().Info("snapshot written", "path", path)
}

func tiltDelta(intent input.IntentType) (dPitch, dRoll float64) {
	step := parameter.ManualNudgeStep
	switch intent {
	case input.IntentTiltUp:
		return -step, 0
	case input.IntentTiltDown:
		return step, 0
	case input.IntentTiltLeft:
		return 0, -step
	case input.IntentTiltRight:
		return 0, step
	}
	return 0, 0
}

// statusLine summarizes the active settings for the bottom row
func statusLine(cfg config.Config, phase parallax.Phase, wobble bool, state engine.RenderState) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, " %s %d", cfg.Density, len(state.Particles))
	fmt.Fprintf(&sb, " │ speed %d", cfg.SpeedTier+1)

	if cfg.Parallax {
		fmt.Fprintf(&sb, " │ parallax %d", cfg.SensitivityTier+1)
		if phase != parallax.PhaseCalibrated {
			sb.WriteString(" (calibrating)")
		}
		if wobble {
			sb.WriteString(" wobble")
		}
	} else {
		sb.WriteString(" │ parallax off")
	}

	if cfg.TimeMode {
		if state.Daytime {
			sb.WriteString(" │ day")
		} else {
			sb.WriteString(" │ night")
		}
		if b := state.Celestial; b != nil {
			fmt.Fprintf(&sb, " %s", b.Window)
		}
		if cfg.TimeOffsetHours != 0 {
			fmt.Fprintf(&sb, " %+.1fh", cfg.TimeOffsetHours)
		}
	}
	if cfg.StarMode {
		sb.WriteString(" │ stars")
	}
	if cfg.Haptics {
		sb.WriteString(" │ ♪")
	}
	return sb.String()
}
