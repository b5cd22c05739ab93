package protocol

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned when any command other than INIT arrives
// before the session holds a cache.
var ErrNotInitialized = errors.New("cache not initialized")

// UnknownCommandError reports a line whose first token is not a known verb.
type UnknownCommandError struct {
	Token string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Token)
}

// MissingArgumentError reports a known verb missing its required arguments.
type MissingArgumentError struct {
	Verb Verb
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s: missing required argument", e.Verb)
}

// InvalidCapacityError reports an INIT whose capacity argument is not a
// positive integer.
type InvalidCapacityError struct {
	Reason string
}

func (e *InvalidCapacityError) Error() string {
	return fmt.Sprintf("invalid capacity: %s", e.Reason)
}
