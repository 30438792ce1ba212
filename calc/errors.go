package calc

import "errors"

var (
	// ErrEmptyHistory is returned when an operand is required but none is queued.
	ErrEmptyHistory = errors.New("calc: empty history")

	// ErrUnknownButton is returned by ParseIntent for labels with no intent.
	ErrUnknownButton = errors.New("calc: unknown button")

	// ErrInvalidIntent is returned by Dispatch for malformed intents.
	ErrInvalidIntent = errors.New("calc: invalid intent")
)
