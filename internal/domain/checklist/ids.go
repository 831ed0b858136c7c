package checklist

import "github.com/google/uuid"

// IDGenerator mints fresh identifiers for new tree nodes.
type IDGenerator interface {
	NewID(kind string) string
}

// Node kinds passed to IDGenerator.
const (
	KindSection  = "section"
	KindCategory = "cat"
	KindItem     = "item"
)

// UUIDGenerator mints ids of the form "<kind>-<uuid>".
type UUIDGenerator struct{}

// NewID returns a new random id prefixed with kind.
func (UUIDGenerator) NewID(kind string) string {
	return kind + "-" + uuid.NewString()
}
