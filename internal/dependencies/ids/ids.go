package ids

import (
	"github.com/google/uuid"
)

// Generator produces identifiers that can be mocked for testing
type Generator interface {
	// NewID returns a new unique identifier in canonical UUID form
	NewID() string
}

// UUIDGenerator implements Generator with time-ordered UUIDv7 values
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new UUIDv7 string.
// Falls back to a random v4 if the v7 clock sequence cannot be read.
func (g *UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Valid reports whether s parses as a UUID
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
