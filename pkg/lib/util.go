package lib

import (
	"github.com/google/uuid"
)

// NewID generates a UUID version 4 string (RFC 4122) identifying one observation.
func NewID() string {
	return uuid.NewString()
}
