package dispatch

import (
	"runtime/debug"
)

// Inline runs work on the calling goroutine.
func Inline(work func()) {
	work()
}

// Go runs work on a new goroutine.
func Go(work func()) {
	go work()
}

// Recover wraps inner so that every unit of work runs inside a recover frame. A recovered
// panic is passed to onPanic as a *PanicError, on the goroutine the work ran on.
//
// Failures are not swallowed: onPanic is the place to log them or to fail a test.
func Recover(inner func(func()), onPanic func(*PanicError)) func(func()) {
	if inner == nil {
		inner = Inline
	}
	return func(work func()) {
		inner(func() {
			defer func() {
				if r := recover(); r != nil && onPanic != nil {
					onPanic(&PanicError{Value: r, Stack: debug.Stack()})
				}
			}()
			work()
		})
	}
}
