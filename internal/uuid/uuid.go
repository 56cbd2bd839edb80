// Package uuid hides ID generation behind an interface so tests can pin IDs
package uuid

//go:generate mockgen -destination=mock/mock_generator.go -package=mockuuid -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator is an interface for generating unique IDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new random (v4) UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// prefixed tags every ID with a kind, e.g. "evt_<uuid>"
type prefixed struct {
	prefix string
	next   Generator
}

// NewPrefixed wraps a generator so its IDs start with prefix and an underscore
func NewPrefixed(prefix string, next Generator) Generator {
	if next == nil {
		next = NewGoogleUUIDGenerator()
	}
	return &prefixed{prefix: prefix + "_", next: next}
}

func (p *prefixed) New() string {
	return p.prefix + p.next.New()
}
