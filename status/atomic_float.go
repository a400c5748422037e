package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 gauge stored as its bit pattern
// Zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores val
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the current value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Mean folds sample into a running average over n samples, n counting this one
func (f *AtomicFloat) Mean(sample float64, n int64) float64 {
	if n <= 0 {
		return f.Get()
	}
	for {
		old := f.bits.Load()
		avg := math.Float64frombits(old)
		avg += (sample - avg) / float64(n)
		if f.bits.CompareAndSwap(old, math.Float64bits(avg)) {
			return avg
		}
	}
}