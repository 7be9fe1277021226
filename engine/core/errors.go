package core

import (
	"errors"
)

var (
	ErrInvalidTickRate = errors.New("tick rate must be a positive frequency")
	ErrPlatformInit    = errors.New("platform initialization failed")
	ErrWorldTerminated = errors.New("world already ran to termination")
	ErrNilCallback     = errors.New("update and render callbacks are required")
	ErrQueueFull       = errors.New("queue is full")
	ErrQueueEmpty      = errors.New("queue is empty")
)
