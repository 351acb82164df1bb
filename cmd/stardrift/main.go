package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stardrift/audio"
	"github.com/lixenwraith/stardrift/config"
	"github.com/lixenwraith/stardrift/core"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/input"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/render"
)

var (
	configFlag   = flag.String("config", "", "Path to TOML configuration")
	keysFlag     = flag.String("keys", "", "Path to TOML keymap overrides")
	debugFlag    = flag.Bool("debug", false, "Write debug log to "+logDir+"/"+logFileName)
	snapshotFlag = flag.String("snapshot", "", "Render headless to this PNG and exit")
	widthFlag    = flag.Int("width", parameter.SnapshotWidth, "Snapshot width in pixels")
	heightFlag   = flag.Int("height", parameter.SnapshotHeight, "Snapshot height in pixels")
	framesFlag   = flag.Int("frames", parameter.SnapshotFrames, "Frames simulated before the snapshot")
	atFlag       = flag.String("at", "", "Snapshot wall clock as HH:MM, default now")
	seedFlag     = flag.Uint64("seed", 0, "Particle seed, 0 uses the clock")
	dumpFlag     = flag.Bool("dump-config", false, "Print the effective configuration and exit")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stardrift: %v\n", err)
		os.Exit(1)
	}

	if *dumpFlag {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "stardrift: %v\n", err)
			os.Exit(1)
		}
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	if *snapshotFlag != "" {
		at := time.Now()
		if *atFlag != "" {
			if at, err = parseClock(*atFlag, at); err != nil {
				fmt.Fprintf(os.Stderr, "stardrift: %v\n", err)
				os.Exit(1)
			}
		}
		if err := runSnapshot(cfg, *snapshotFlag, *widthFlag, *heightFlag, *framesFlag, seed, at); err != nil {
			fmt.Fprintf(os.Stderr, "stardrift: %v\n", err)
			os.Exit(1)
		}
		return
	}

	keys, err := input.LoadKeyFile(*keysFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stardrift: %v\n", err)
		os.Exit(1)
	}

	if err := runInteractive(cfg, keys, seed); err != nil {
		fmt.Fprintf(os.Stderr, "stardrift: %v\n", err)
		os.Exit(1)
	}
}

func runInteractive(cfg config.Config, keys *input.KeyTable, seed uint64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer core.SetCrashCleanup(nil)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	audioCfg := audio.LoadConfig()
	feedback := audio.NewFeedback(audioCfg)
	if err := feedback.Init(); err != nil {
		core.Logger().Warn("continuing without audio feedback", "error", err)
	}
	defer feedback.Close()

	a := newApp(screen, cfg, keys, feedback, engine.WithSeed(seed))
	a.snapshotDir = "."
	a.start()
	defer a.close()

	core.Logger().Info("stardrift started", "particles", cfg.ParticleCount(), "fps", cfg.FPS)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	// PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})
	defer close(quit)

	for ev := range events {
		if !a.handleEvent(ev) {
			return nil
		}
	}
	return nil
}

// runSnapshot simulates frames at the nominal rate and writes the last one
func runSnapshot(cfg config.Config, path string, width, height, frames int, seed uint64, at time.Time) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("snapshot size %dx%d", width, height)
	}
	frames = max(frames, 1)

	theme, err := render.NewTheme(cfg.Theme)
	if err != nil {
		return err
	}

	clock := engine.NewMockTimeProvider(at)
	animator := engine.NewAnimator(cfg,
		engine.WithSeed(seed),
		engine.WithTimeProvider(clock),
		engine.WithViewport(float64(width), float64(height)),
	)

	step := int64(parameter.FrameUpdateInterval)
	var state engine.RenderState
	for i := 0; i < frames; i++ {
		state = animator.Frame(int64(i) * step)
		clock.Advance(parameter.FrameUpdateInterval)
	}

	r := render.NewSnapshotRenderer(width, height, theme)
	r.Caption = render.SnapshotCaption(state)
	if err := r.Save(path, state); err != nil {
		return err
	}
	core.Logger().Info("snapshot written", "path", path, "frames", frames)
	return nil
}

// parseClock applies an HH:MM wall clock to the date of base
func parseClock(s string, base time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse -at %q: %w", s, err)
	}
	return time.Date(base.Year(), base.Month(), base.Day(), t.Hour(), t.Minute(), 0, 0, base.Location()), nil
}
