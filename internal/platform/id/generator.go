package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for seeded and imported rows.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator emits random (v4) UUIDs, optionally prefixed, e.g. "team_3f2a...".
type UUIDGenerator struct {
	prefix string
}

func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	if g.prefix == "" {
		return v.String(), nil
	}
	return g.prefix + "_" + v.String(), nil
}
