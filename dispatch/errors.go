package dispatch

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned when work is submitted after shutdown.
	ErrClosed = errors.New("dispatch: closed")

	// ErrQueueFull is returned by non-blocking submissions when the queue has no room.
	ErrQueueFull = errors.New("dispatch: queue is full")
)

// PanicError carries a value recovered from a panicking unit of work.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("dispatch: work panicked: %v", e.Value)
}

// Unwrap exposes the panic value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
