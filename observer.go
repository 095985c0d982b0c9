package hoot

import "reflect"

// Observer is notified about registry and delivery activity. Implementations must be safe
// for concurrent use; callbacks run outside the registry lock.
type Observer interface {
	// RegistryChanged reports the registry size after a subscribe, unsubscribe or prune.
	RegistryChanged(size int)
	// Published is called once per accepted Publish, when its unit of work starts.
	Published(messageType reflect.Type)
	// Delivered is called after each handler invocation returned.
	Delivered(messageType, subscriberType reflect.Type)
}

type noopObserver struct{}

func (noopObserver) RegistryChanged(int)                  {}
func (noopObserver) Published(reflect.Type)               {}
func (noopObserver) Delivered(reflect.Type, reflect.Type) {}
