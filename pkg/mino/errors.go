package mino

import "github.com/pkg/errors"

var (
	// ErrOutOfRange reports an index or coordinate outside valid bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidShape reports an empty or non-rectangular mask.
	ErrInvalidShape = errors.New("invalid shape")
)
