package utils

import "github.com/google/uuid"

// RequestIDGenerator produces per-request identifiers for the observer
// middleware.
//
// UUIDv7 identifiers carry a millisecond time component followed by random
// bits, which makes them collision-resistant within a process lifetime and
// sortable by creation time. They are not cryptographically secure and must
// not be used as secrets.
type RequestIDGenerator struct {
}

func NewRequestIDGenerator() *RequestIDGenerator {
	return &RequestIDGenerator{}
}

// Generate returns a new request identifier. Falls back to a random UUIDv4
// in the unlikely event that v7 generation fails.
func (g *RequestIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
