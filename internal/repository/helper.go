package repository

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator returns the random part of a new resource id.
type IDGenerator func() string

// DefaultIDGenerator produces 21 character ids out of a random uuid.
func DefaultIDGenerator() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:21]
}

// NewID joins the resource prefix and a generated id, e.g. "thread-" + "h8Fk...".
func NewID(prefix string, gen IDGenerator) string {
	if gen == nil {
		gen = DefaultIDGenerator
	}
	return prefix + "-" + gen()
}
