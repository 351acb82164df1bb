package sensor

import (
	"math"
	"sync"
	"time"

	"github.com/lixenwraith/stardrift/core"
	"github.com/lixenwraith/stardrift/parameter"
)

// WobbleAt is the synthetic attitude at t seconds: a slow elliptical sway
func WobbleAt(t, amplitude float64) Sample {
	w := 2 * math.Pi * t / parameter.WobblePeriod
	return Sample{
		Pitch: amplitude * math.Sin(w),
		Roll:  amplitude * 0.5 * math.Sin(2*w),
	}
}

// Wobble emits WobbleAt samples at a fixed rate
type Wobble struct {
	samples  chan Sample
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWobble starts a synthetic source sampling rate times per second
func NewWobble(rate, amplitude float64) *Wobble {
	if rate <= 0 {
		rate = parameter.WobbleSampleRate
	}
	w := &Wobble{
		samples:  make(chan Sample, 1),
		stopChan: make(chan struct{}),
	}

	interval := time.Duration(float64(time.Second) / rate)
	start := time.Now()

	w.wg.Add(1)
	core.Go(func() {
		defer w.wg.Done()
		defer close(w.samples)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-w.stopChan:
				return
			case now := <-ticker.C:
				s := WobbleAt(now.Sub(start).Seconds(), amplitude)
				select {
				case w.samples <- s:
				case <-w.stopChan:
					return
				default:
					// Consumer is behind, drop
				}
			}
		}
	})
	return w
}

func (w *Wobble) Samples() <-chan Sample { return w.samples }

// Close stops the generator and waits for it to exit
func (w *Wobble) Close() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
	})
	w.wg.Wait()
}
