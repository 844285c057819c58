package repository

import "errors"

// ErrNotFound is returned when the calendar has no event with the given ID.
var ErrNotFound = errors.New("event not found")
