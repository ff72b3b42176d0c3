// Package identity provides the production id and clock sources the write
// planner draws from.
package identity

import (
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/utils"

	"github.com/google/uuid"
)

// UUIDSource issues random ids for entities and requests, and time-ordered
// ids for the index sort tokens.
type UUIDSource struct{}

// NewUUIDSource creates a UUIDSource.
func NewUUIDSource() entity.IDSource {
	return UUIDSource{}
}

// NewID returns a random UUID.
func (UUIDSource) NewID() string {
	return uuid.NewString()
}

// NewToken returns a UUIDv7, sortable by creation time. Index enumeration
// relies on that ordering.
func (UUIDSource) NewToken() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Entropy exhaustion only; a random id loses ordering, not safety.
		return uuid.NewString()
	}
	return id.String()
}

// UTCClock stamps items with the current UTC time.
type UTCClock struct{}

// NewUTCClock creates a UTCClock.
func NewUTCClock() entity.Clock {
	return UTCClock{}
}

// NowISO8601 returns the current UTC time in RFC 3339 format.
func (UTCClock) NowISO8601() string {
	return utils.NowUTCRFC3339()
}
