package services

import "errors"

// Fatal configuration errors, rejected before a simulation starts.
// Everything else in a run is recoverable and only counted.
var (
	ErrEmptyField    = errors.New("tournament field is empty")
	ErrNoAdvancement = errors.New("no players reached the day-2 threshold")
	ErrCutTooLarge   = errors.New("top cut is larger than the qualifying field")
)
