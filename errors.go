package hoot

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every argument validation failure. All of them are
// reported synchronously, before any dispatch work happens.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrNilMessage is returned by Publish for a nil message or a typed nil pointer.
	ErrNilMessage = fmt.Errorf("%w: message cannot be nil", ErrInvalidArgument)

	// ErrNilMarshaller is returned by Publish when no marshaller is supplied.
	ErrNilMarshaller = fmt.Errorf("%w: marshaller cannot be nil", ErrInvalidArgument)

	// ErrInvalidSubscriber is returned by Subscribe and Unsubscribe when the subscriber is nil,
	// not a pointer, or points to a zero-sized value.
	ErrInvalidSubscriber = fmt.Errorf("%w: subscriber must be a non-nil pointer to a non-zero-sized value", ErrInvalidArgument)
)
