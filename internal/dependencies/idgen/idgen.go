package idgen

import "github.com/google/uuid"

// Generator produces match identifiers that can be mocked for testing
type Generator interface {
	// NewID returns a fresh identifier, unique for the process lifetime
	NewID() string
}

// UUIDGenerator implements Generator using random UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a random UUID string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
