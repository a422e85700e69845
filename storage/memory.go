package storage

import (
	"context"
	"sync"
)

// MemoryKV mantém o slot apenas em memória, útil para testes e hosts sem disco.
type MemoryKV struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

// Read devolve o conteúdo atual ou ErrVazio.
func (m *MemoryKV) Read(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil, ErrVazio
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

// Write substitui o conteúdo do slot.
func (m *MemoryKV) Write(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.set = true
	return nil
}

// Delete esvazia o slot; idempotente.
func (m *MemoryKV) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	m.set = false
	return nil
}
