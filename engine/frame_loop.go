package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/stardrift/core"
)

// TickSource delivers monotonic frame timestamps in nanoseconds
type TickSource interface {
	Ticks() <-chan int64
	Stop()
}

// tickerSource adapts a time.Ticker to timestamps relative to its own start
type tickerSource struct {
	ticks    chan int64
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewTickerSource starts a ticker firing every interval
// A slow consumer drops ticks instead of queueing them
func NewTickerSource(interval time.Duration) TickSource {
	if interval <= 0 {
		interval = time.Second / 60
	}
	s := &tickerSource{
		ticks:    make(chan int64, 1),
		stopChan: make(chan struct{}),
	}
	start := time.Now()
	ticker := time.NewTicker(interval)

	core.Go(func() {
		defer ticker.Stop()
		for {
			select {
			case <-s.stopChan:
				return
			case now := <-ticker.C:
				select {
				case s.ticks <- now.Sub(start).Nanoseconds():
				default:
				}
			}
		}
	})
	return s
}

func (s *tickerSource) Ticks() <-chan int64 { return s.ticks }

func (s *tickerSource) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

// ManualTicks is a TickSource driven by explicit Tick calls
type ManualTicks struct {
	ticks    chan int64
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewManualTicks creates an unbuffered manual source, each Tick blocks until consumed
func NewManualTicks() *ManualTicks {
	return &ManualTicks{
		ticks:    make(chan int64),
		stopChan: make(chan struct{}),
	}
}

// Tick delivers one timestamp, returns false if the source was stopped first
func (m *ManualTicks) Tick(nanos int64) bool {
	select {
	case m.ticks <- nanos:
		return true
	case <-m.stopChan:
		return false
	}
}

func (m *ManualTicks) Ticks() <-chan int64 { return m.ticks }

func (m *ManualTicks) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// Sink consumes render states on the loop goroutine
type Sink interface {
	Render(RenderState)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(RenderState)

func (f SinkFunc) Render(s RenderState) { f(s) }

// FrameLoop runs the animator on every tick until stopped
// A stopped loop can be started again; each run gets a fresh tick source
type FrameLoop struct {
	animator  *Animator
	newSource func() TickSource
	sink      Sink

	mu       sync.Mutex
	stopChan chan struct{}
	done     chan struct{}

	frames atomic.Uint64
}

// NewFrameLoop wires an animator to a tick source factory and a sink, sink may be nil
func NewFrameLoop(animator *Animator, newSource func() TickSource, sink Sink) *FrameLoop {
	return &FrameLoop{
		animator:  animator,
		newSource: newSource,
		sink:      sink,
	}
}

// Start launches the loop goroutine, no-op when already running
func (l *FrameLoop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.runningLocked() {
		return
	}

	src := l.newSource()
	l.stopChan = make(chan struct{})
	l.done = make(chan struct{})
	stopChan, done := l.stopChan, l.done

	core.Logger().Info("frame loop started")
	core.Go(func() {
		l.run(src, stopChan, done)
	})
}

// Stop cancels the loop and blocks until it exits
// Frame history is reset so the next Start begins with a nominal delta
// Must not be called from the sink
func (l *FrameLoop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done == nil {
		return
	}
	select {
	case <-l.stopChan:
	default:
		close(l.stopChan)
	}
	<-l.done
	l.done = nil
	l.stopChan = nil

	l.animator.Reset()
	core.Logger().Info("frame loop stopped", l.animator.Status().Attrs()...)
}

// Running reports whether the loop goroutine is alive
func (l *FrameLoop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.runningLocked()
}

func (l *FrameLoop) runningLocked() bool {
	if l.done == nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
		return true
	}
}

// Frames returns the number of frames rendered across all runs
func (l *FrameLoop) Frames() uint64 {
	return l.frames.Load()
}

func (l *FrameLoop) run(src TickSource, stopChan <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer src.Stop()

	ticks := src.Ticks()
	for {
		select {
		case <-stopChan:
			return
		case nanos, ok := <-ticks:
			if !ok {
				return
			}
			// A stop racing a tick wins
			select {
			case <-stopChan:
				return
			default:
			}

			state := l.animator.Frame(nanos)
			l.frames.Add(1)
			if l.sink != nil {
				l.sink.Render(state)
			}
		}
	}
}
