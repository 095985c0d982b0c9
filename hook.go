package hoot

import (
	"sync/atomic"
)

// ResultHandler receives the non-nil value a handler returned, together with the subscriber
// that produced it. It runs on whatever goroutine the marshaller ran the delivery on.
//
// This is the seam for handlers that return follow-up work (a pending operation, a command
// to schedule) which the caller wants to route into its own scheduling.
type ResultHandler func(subscriber, result any)

func noopResultHandler(any, any) {}

var processResultHandler atomic.Pointer[ResultHandler]

// SetResultHandler replaces the process-wide result hook and returns the previous one.
// Passing nil restores the default, which discards results.
//
// Aggregators created with WithResultHandler ignore the process-wide hook.
func SetResultHandler(fn ResultHandler) ResultHandler {
	var prev *ResultHandler
	if fn == nil {
		prev = processResultHandler.Swap(nil)
	} else {
		prev = processResultHandler.Swap(&fn)
	}
	if prev == nil {
		return noopResultHandler
	}
	return *prev
}

// ResultHandlerFunc returns the process-wide result hook currently installed.
func ResultHandlerFunc() ResultHandler {
	if fn := processResultHandler.Load(); fn != nil {
		return *fn
	}
	return noopResultHandler
}

// ComposeResultHandlers forwards every result to each handler in order. Nil handlers are skipped.
func ComposeResultHandlers(handlers ...ResultHandler) ResultHandler {
	composed := make([]ResultHandler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			composed = append(composed, h)
		}
	}
	return func(subscriber, result any) {
		for _, h := range composed {
			h(subscriber, result)
		}
	}
}
