package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered UUIDv7 strings, falling back to a random
// UUIDv4 if the clock source fails. It is used for session and trace ids.
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
