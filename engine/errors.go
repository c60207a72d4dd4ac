package engine

import "errors"

var (
	// ErrNotActive rejects intents outside an active match
	ErrNotActive = errors.New("match not active")
	// ErrInvalidTransition rejects a state change the lifecycle does not allow
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrUnknownPlayer rejects intents for ids not in the roster
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrPersistence wraps store failures; in-memory state is never rolled back
	ErrPersistence = errors.New("persistence failed")
	// ErrStopped is returned once Run has exited
	ErrStopped = errors.New("engine stopped")
)
