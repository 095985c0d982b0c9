package hoot

import (
	"reflect"
	"sync"
)

var defaultAggregator = sync.OnceValue(func() *Aggregator { return New() })

// Default returns the process-wide Aggregator. It is created on first use and lives for the
// rest of the process. Components that can take an EventAggregator as a dependency should
// prefer that over reaching for Default.
func Default() *Aggregator {
	return defaultAggregator()
}

// Subscribe registers subscriber with the process-wide aggregator.
func Subscribe(subscriber any) error {
	return Default().Subscribe(subscriber)
}

// Unsubscribe removes subscriber from the process-wide aggregator.
func Unsubscribe(subscriber any) error {
	return Default().Unsubscribe(subscriber)
}

// HandlerExistsFor asks the process-wide aggregator whether messageType has a live handler.
func HandlerExistsFor(messageType reflect.Type) bool {
	return Default().HandlerExistsFor(messageType)
}

// Publish publishes message on the process-wide aggregator.
func Publish(message any, marshal Marshaller) error {
	return Default().Publish(message, marshal)
}
