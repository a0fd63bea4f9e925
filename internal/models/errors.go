package models

import "errors"

// Custom errors
var (
	ErrInvalidOdds      = errors.New("invalid odds: zero is not a representable market price")
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrNotFound         = errors.New("record not found")
)
