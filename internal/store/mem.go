package store

import (
	"sync"

	"github.com/kizzez/cafeadmin/internal/domain"
)

// MemGateway is an in-memory Gateway used as a test double.
// It honors the same absent-key semantics as BoltGateway.
type MemGateway struct {
	mu   sync.Mutex
	data map[domain.Collection][]byte
}

func NewMemGateway() *MemGateway {
	return &MemGateway{data: make(map[domain.Collection][]byte)}
}

func (g *MemGateway) ReadRaw(c domain.Collection) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.data[c]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (g *MemGateway) WriteRaw(c domain.Collection, data []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	v := make([]byte, len(data))
	copy(v, data)
	g.data[c] = v
	return nil
}

func (g *MemGateway) Close() error { return nil }
