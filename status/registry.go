package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the central metrics facade
// Components cache pointers at construction; hot paths write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
	Floats  *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
		Floats:  NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count() + r.Floats.Count()
}

// Lines renders every metric as "key=value" in sorted order per type
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Strings.Range(func(key string, ptr *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", key, ptr.Load()))
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, ptr.Load()))
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.1f", key, ptr.Get()))
	})
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s=%t", key, ptr.Load()))
	})
	return lines
}
