/*
Package hoot provides an in-process event aggregator: publishers send messages to whoever
cares about them without knowing who that is, and subscribers receive them without holding
a reference to the publisher.

The package implements this through a few abstractions:

  - Aggregator: the registry of subscribers and the entry point for publishing
  - Handlers: exported methods named Handle or Handle<Something> that take one message
  - Marshallers: functions that decide where the delivery of a message runs
  - Result hook: where values returned by handlers end up

# Basic Usage

A subscriber is any pointer whose type declares handler methods:

	type Inventory struct{ reserved map[string]int }

	func (i *Inventory) HandleOrderPlaced(msg OrderPlaced) {
		i.reserved[msg.SKU] += msg.Quantity
	}

	agg := hoot.New()
	inv := &Inventory{reserved: map[string]int{}}
	if err := agg.Subscribe(inv); err != nil {
		// not a pointer
	}

	err := agg.PublishOnCurrentGoroutine(OrderPlaced{SKU: "owl-1", Quantity: 2})

A handler parameter may be an interface. A handler for fmt.Stringer receives every message
whose type implements it, and a handler for any receives everything (see Tap).

# Subscriber lifetime

The aggregator only references subscribers weakly. A subscriber that becomes unreachable
stops receiving messages and is removed from the registry by the next Publish, so forgetting
to Unsubscribe does not leak. The flip side is that the caller has to keep subscribers
reachable for as long as they should receive messages. Package-level variables and small
pointer-free values may never be reclaimed (see Aggregator.Subscribe); unsubscribe those
explicitly.

# Delivery

Publish copies the registry and hands the whole delivery to a Marshaller as one unit of
work. The dispatch package provides marshallers for inline delivery, new goroutines, a
bounded worker pool and a single-goroutine loop that serializes deliveries the way a UI
thread does.

Because delivery works on a copy, handlers may subscribe, unsubscribe or publish without
deadlocking. Unsubscribing after a Publish took its copy does not stop that delivery, only
later ones.

Handler panics are not recovered by the aggregator. Wrap a marshaller with dispatch.Recover
to contain them.

# Results

Handlers may return one value. Non-nil results are passed, with the subscriber that produced
them, to the aggregator's ResultHandler (WithResultHandler) or else to the process-wide hook
installed with SetResultHandler.

# Thread Safety

An Aggregator is safe for concurrent use. Handlers run on whatever goroutine the marshaller
chose and must synchronize their own state.
*/
package hoot
