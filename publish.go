package hoot

import (
	"reflect"

	"github.com/casualjim/hoot/pkg/reflectx"
)

// Publish delivers message to every live subscriber with a compatible handler.
//
// The registry is copied under the lock and the delivery itself is handed to marshal as a
// single unit of work, so handlers are free to subscribe, unsubscribe or publish. Handlers
// run in subscription order; a subscriber with several compatible handlers has them called
// in discovery order. Subscribers found reclaimed during the walk are removed afterwards.
//
// Publish returns when marshal returns. With an asynchronous marshaller delivery may still
// be pending. A panicking handler is not recovered: the panic travels through marshal and
// the remaining handlers of this publish don't run.
func (a *Aggregator) Publish(message any, marshal Marshaller) error {
	if reflectx.IsNil(message) {
		return ErrNilMessage
	}
	if marshal == nil {
		return ErrNilMarshaller
	}

	toNotify := a.snapshot()
	marshal(func() {
		a.deliver(message, toNotify)
	})
	return nil
}

// PublishOnCurrentGoroutine publishes message and delivers it before returning.
func (a *Aggregator) PublishOnCurrentGoroutine(message any) error {
	return a.Publish(message, func(work func()) { work() })
}

// PublishOnBackground publishes message and delivers it on a new goroutine.
func (a *Aggregator) PublishOnBackground(message any) error {
	return a.Publish(message, func(work func()) { go work() })
}

func (a *Aggregator) deliver(message any, toNotify []*subscription) {
	msg := reflect.ValueOf(message)
	a.observer.Published(msg.Type())
	onResult := a.results()

	var dead []*subscription
	for _, sub := range toNotify {
		if !sub.deliver(msg, onResult, a.observer) {
			dead = append(dead, sub)
		}
	}

	if len(dead) > 0 {
		a.prune(dead)
	}
}
