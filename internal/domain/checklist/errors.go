package checklist

import "errors"

var (
	// ErrInvalidProject indicates a tree that violates the model invariants.
	ErrInvalidProject = errors.New("invalid checklist project")
	// ErrInvalidStatus indicates a status outside PENDING, OK and NA.
	ErrInvalidStatus = errors.New("invalid item status")
)
