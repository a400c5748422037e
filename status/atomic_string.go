package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen caps label metrics, counted in runes
const MaxStringLen = 24

// AtomicString holds a short label such as the active game name
type AtomicString struct {
	v atomic.Value
}

// Store replaces the label, cutting it to MaxStringLen runes
func (s *AtomicString) Store(val string) {
	if utf8.RuneCountInString(val) > MaxStringLen {
		val = string([]rune(val)[:MaxStringLen])
	}
	s.v.Store(val)
}

// Load returns the label, empty before the first Store
func (s *AtomicString) Load() string {
	val, _ := s.v.Load().(string)
	return val
}
