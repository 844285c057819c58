package interpreter

import "errors"

// Domain-specific errors for the interpreter package.
var (
	ErrEmptySentence = errors.New("sentence is empty")
)
