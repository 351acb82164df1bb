// Package status holds lock-free counters and gauges for the frame loop.
// Components cache metric pointers at construction; the frame path writes atomics directly.
package status

import (
	"log/slog"
	"sync/atomic"
)

// Registry is the central metrics facade
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Attrs renders every metric as slog attributes in key order, ints first
func (r *Registry) Attrs() []any {
	attrs := make([]any, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		attrs = append(attrs, slog.Int64(k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		attrs = append(attrs, slog.Float64(k, v.Get()))
	})
	return attrs
}
