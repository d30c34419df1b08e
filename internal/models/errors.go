package models

import "errors"

// Sentinel errors for local, synchronous failures. These are rejected at the
// call site and never leave state partially mutated.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrOutOfRange     = errors.New("index out of range")
	ErrNotFound       = errors.New("not found")
	ErrNotSubmittable = errors.New("draft not submittable")
)
