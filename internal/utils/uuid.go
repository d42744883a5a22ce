package utils

import "github.com/google/uuid"

// UUIDGenerator produces request identifiers for outbound API calls.
// It prefers time-ordered UUIDv7 values and falls back to v4 when the
// monotonic source is unavailable.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
