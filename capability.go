package hoot

import (
	"reflect"

	"github.com/casualjim/hoot/internal/registry"
	"github.com/casualjim/hoot/pkg/reflectx"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// capability is one declared handler: the message type it accepts and the unbound method
// that handles it. The method takes the receiver as its first argument, so holding it does
// not keep any subscriber alive.
type capability struct {
	name        string
	messageType reflect.Type
	method      reflect.Value
	hasResult   bool
}

func (c *capability) accepts(messageType reflect.Type) bool {
	return messageType.AssignableTo(c.messageType)
}

// invoke calls the handler on receiver and returns its result, if it produced a non-nil one.
func (c *capability) invoke(receiver, message reflect.Value) (any, bool) {
	out := c.method.Call([]reflect.Value{receiver, message})
	if !c.hasResult || reflectx.IsNilValue(out[0]) {
		return nil, false
	}
	return out[0].Interface(), true
}

// capabilities maps declared message types to handlers, in discovery order.
// It is built once per subscriber type and never modified afterwards.
type capabilities = orderedmap.OrderedMap[reflect.Type, *capability]

// capabilityCache memoizes introspection per subscriber type. It is keyed by the address of
// the runtime type descriptor, which is unique per type and never freed.
type capabilityCache struct {
	entries registry.Registry[uintptr, *capabilities]
}

func newCapabilityCache() *capabilityCache {
	return &capabilityCache{entries: registry.New[uintptr, *capabilities]()}
}

func (c *capabilityCache) lookup(t reflect.Type) *capabilities {
	caps, _ := c.entries.GetOrAdd(reflect.ValueOf(t).Pointer(), func() *capabilities {
		return discoverCapabilities(t)
	})
	return caps
}

// discoverCapabilities scans the method set of subscriberType for handler methods.
// Methods come back from reflect sorted by name, which fixes the discovery order.
// Methods that don't have the handler shape are skipped, and for a message type that is
// declared twice the first method wins.
func discoverCapabilities(subscriberType reflect.Type) *capabilities {
	caps := orderedmap.New[reflect.Type, *capability]()
	for i := range subscriberType.NumMethod() {
		m := subscriberType.Method(i)
		messageType, ok := reflectx.HandlerParam(m)
		if !ok {
			continue
		}
		if _, seen := caps.Get(messageType); seen {
			continue
		}
		caps.Set(messageType, &capability{
			name:        m.Name,
			messageType: messageType,
			method:      m.Func,
			hasResult:   reflectx.ReturnsValue(m),
		})
	}
	return caps
}
