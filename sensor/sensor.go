// Package sensor produces device attitude samples for the parallax tracker.
// Real motion hardware is platform specific; the sources here are synthetic
// (Wobble) or keyboard driven (Manual). A missing sensor is a nil Source.
package sensor

import (
	"context"

	"github.com/lixenwraith/stardrift/core"
	"github.com/lixenwraith/stardrift/parallax"
)

// Sample is one raw attitude reading in degrees
type Sample = parallax.Sample

// Source streams samples until closed
type Source interface {
	Samples() <-chan Sample
	Close()
}

// Sink receives samples, satisfied by *parallax.Tracker
type Sink interface {
	Push(Sample)
}

// Pump forwards samples from src to sink until ctx ends or src closes its channel
// A nil source returns immediately
func Pump(ctx context.Context, src Source, sink Sink) error {
	if src == nil {
		return nil
	}

	log := core.Logger()
	log.Debug("sensor pump started")
	defer log.Debug("sensor pump stopped")

	samples := src.Samples()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case s, ok := <-samples:
			if !ok {
				return nil
			}
			sink.Push(s)
		}
	}
}
