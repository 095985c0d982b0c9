package hoot

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/casualjim/hoot/pkg/slogx"
	"github.com/casualjim/hoot/pkg/uuidx"
	"github.com/casualjim/hoot/pkg/weakx"
	"github.com/fogfish/opts"
)

// EventAggregator enables loosely-coupled publication of and subscription to messages.
type EventAggregator interface {
	// Subscribe registers every handler method declared by subscriber.
	Subscribe(subscriber any) error
	// Unsubscribe removes subscriber from all future publications.
	Unsubscribe(subscriber any) error
	// HandlerExistsFor reports whether any live subscriber handles messageType.
	HandlerExistsFor(messageType reflect.Type) bool
	// Publish delivers message to every compatible handler through marshal.
	Publish(message any, marshal Marshaller) error
}

// Marshaller arranges for a unit of work to run: inline, on another goroutine, on a worker
// pool or on a designated goroutine. It must run work at most once. The dispatch package
// has ready-made implementations.
type Marshaller func(work func())

var _ EventAggregator = (*Aggregator)(nil)

// Aggregator is the default EventAggregator. The zero value is not usable; use New or Default.
type Aggregator struct {
	mu            sync.Mutex
	subscriptions []*subscription

	cache         *capabilityCache
	logger        *slog.Logger
	resultHandler ResultHandler
	observer      Observer
}

// New creates an Aggregator owned by the caller.
func New(options ...Option) *Aggregator {
	s := defaultSettings()
	if err := opts.Apply(&s, options); err != nil {
		panic(err)
	}
	return &Aggregator{
		cache:         newCapabilityCache(),
		logger:        s.logger,
		resultHandler: s.resultHandler,
		observer:      s.observer,
	}
}

// Subscribe registers subscriber for every message type it declares a handler method for.
// Subscribing an already subscribed value is a no-op.
//
// The aggregator only keeps a weak reference: once nothing else references subscriber it
// stops receiving messages and is removed by the next Publish, without an Unsubscribe call.
// "Once" is up to the garbage collector. A package-level variable is never collected, and a
// value smaller than 16 bytes without pointer fields may share its memory block with other
// small allocations and be collected only together with them. Unsubscribe such subscribers
// explicitly, or give them a pointer field.
func (a *Aggregator) Subscribe(subscriber any) error {
	ref, err := weakx.Make(subscriber)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSubscriber, err)
	}
	caps := a.cache.lookup(ref.Type())

	a.mu.Lock()
	if slices.ContainsFunc(a.subscriptions, func(s *subscription) bool { return s.matches(subscriber) }) {
		a.mu.Unlock()
		return nil
	}
	sub := newSubscription(ref, caps)
	a.subscriptions = append(a.subscriptions, sub)
	size := len(a.subscriptions)
	a.mu.Unlock()

	a.observer.RegistryChanged(size)
	if ref.MayOutlive() {
		a.logger.Debug("subscriber may outlive its last reference",
			slogx.Type("subscriber", ref.Type()),
			slog.String("subscription", uuidx.Short(sub.id)),
		)
	}
	if caps.Len() == 0 {
		a.logger.Debug("subscribed without handlers",
			slogx.Type("subscriber", ref.Type()),
			slog.String("subscription", uuidx.Short(sub.id)),
		)
		return nil
	}
	a.logger.Debug("subscribed",
		slogx.Type("subscriber", ref.Type()),
		slog.String("subscription", uuidx.Short(sub.id)),
		slog.Int("handlers", caps.Len()),
	)
	return nil
}

// Unsubscribe removes subscriber. It is a no-op when subscriber is not subscribed.
// A delivery already in progress is not interrupted.
func (a *Aggregator) Unsubscribe(subscriber any) error {
	if _, err := weakx.Make(subscriber); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSubscriber, err)
	}

	a.mu.Lock()
	idx := slices.IndexFunc(a.subscriptions, func(s *subscription) bool { return s.matches(subscriber) })
	if idx < 0 {
		a.mu.Unlock()
		return nil
	}
	removed := a.subscriptions[idx]
	a.subscriptions = slices.Delete(a.subscriptions, idx, idx+1)
	size := len(a.subscriptions)
	a.mu.Unlock()

	a.observer.RegistryChanged(size)
	a.logger.Debug("unsubscribed",
		slogx.Type("subscriber", removed.ref.Type()),
		slog.String("subscription", uuidx.Short(removed.id)),
	)
	return nil
}

// HandlerExistsFor reports whether a live subscriber declares a handler that accepts
// messageType, either the type itself or an interface it implements. Producers can use it
// to skip building messages nobody listens to. It does not prune dead subscriptions.
func (a *Aggregator) HandlerExistsFor(messageType reflect.Type) bool {
	if messageType == nil {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.ContainsFunc(a.subscriptions, func(s *subscription) bool {
		return s.handles(messageType) && s.alive()
	})
}

// HandlerExists is HandlerExistsFor for the static type T.
func HandlerExists[T any](agg EventAggregator) bool {
	return agg.HandlerExistsFor(reflect.TypeFor[T]())
}

// Subscriptions returns the live subscriptions in dispatch order.
func (a *Aggregator) Subscriptions() []SubscriptionInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	infos := make([]SubscriptionInfo, 0, len(a.subscriptions))
	for _, s := range a.subscriptions {
		if s.alive() {
			infos = append(infos, s.info())
		}
	}
	return infos
}

// Len returns the number of registry entries, including dead ones not yet pruned.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.subscriptions)
}

func (a *Aggregator) snapshot() []*subscription {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.subscriptions)
}

// prune removes dead subscriptions by identity, so entries added or removed since the
// snapshot was taken are left alone.
func (a *Aggregator) prune(dead []*subscription) {
	a.mu.Lock()
	before := len(a.subscriptions)
	a.subscriptions = slices.DeleteFunc(a.subscriptions, func(s *subscription) bool {
		return slices.Contains(dead, s)
	})
	size := len(a.subscriptions)
	a.mu.Unlock()

	if size != before {
		a.observer.RegistryChanged(size)
	}
}

func (a *Aggregator) results() ResultHandler {
	if a.resultHandler != nil {
		return a.resultHandler
	}
	return ResultHandlerFunc()
}
