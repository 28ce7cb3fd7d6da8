package mocks

import (
	"fmt"

	"github.com/courtlog/courtlog/internal/dependencies/idgen"
)

// MockGenerator is a mock implementation of idgen.Generator for testing
type MockGenerator struct {
	// IDs is a queue of identifiers to return from NewID
	IDs []string
	idx int
	// seq backs generated identifiers once the queue is exhausted
	seq int
}

// Ensure MockGenerator implements Generator
var _ idgen.Generator = (*MockGenerator)(nil)

// NewMockGenerator creates a new MockGenerator
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// NewID returns the next queued identifier, or a sequential "id-N"
// identifier once the queue is exhausted
func (g *MockGenerator) NewID() string {
	if g.idx < len(g.IDs) {
		id := g.IDs[g.idx]
		g.idx++
		return id
	}
	g.seq++
	return fmt.Sprintf("id-%d", g.seq)
}

// QueueIDs adds identifiers to the result queue
func (g *MockGenerator) QueueIDs(ids ...string) {
	g.IDs = append(g.IDs, ids...)
}
