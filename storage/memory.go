package storage

import (
	"context"
	"sync"

	"github.com/lixenwraith/folio-arcade/progress"
)

// Memory keeps records in process memory; nothing survives a restart
type Memory struct {
	mu      sync.Mutex
	records map[string]progress.Record
}

// NewMemory creates an empty in-memory backend
func NewMemory() *Memory {
	return &Memory{records: make(map[string]progress.Record)}
}

func (m *Memory) Load(_ context.Context, key string) (progress.Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[key]
	return rec, ok, nil
}

func (m *Memory) Save(_ context.Context, key string, rec progress.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = rec
	return nil
}

func (m *Memory) Close() error { return nil }
