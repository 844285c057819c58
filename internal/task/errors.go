package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyCommand   = errors.New("command sentence is empty")
	ErrEmptyTitle     = errors.New("meeting title is empty")
	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidTaskID  = errors.New("task id is empty")
	ErrNothingToPatch = errors.New("update carries no fields")
)
