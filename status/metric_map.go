package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap holds named metrics of one type
// Components look a metric up once and keep the pointer; only lookups take the lock
type MetricMap[T any] struct {
	mu    sync.Mutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, registering a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	ptr, ok := m.items[key]
	if !ok {
		ptr = new(T)
		m.items[key] = ptr
	}
	return ptr
}

func (m *MetricMap[T]) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]
	return ok
}

// Range visits every metric by ascending key
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.Lock()
	keys := slices.Sorted(maps.Keys(m.items))
	ptrs := make([]*T, len(keys))
	for i, k := range keys {
		ptrs[i] = m.items[k]
	}
	m.mu.Unlock()

	for i, k := range keys {
		fn(k, ptrs[i])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
