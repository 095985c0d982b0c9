package hoot

import (
	"reflect"

	"github.com/casualjim/hoot/pkg/reflectx"
	"github.com/casualjim/hoot/pkg/uuidx"
	"github.com/casualjim/hoot/pkg/weakx"
	"github.com/google/uuid"
)

// subscription is the registry record for one subscriber.
type subscription struct {
	id   uuid.UUID
	ref  weakx.Ref
	caps *capabilities
}

func newSubscription(ref weakx.Ref, caps *capabilities) *subscription {
	return &subscription{
		id:   uuidx.New(),
		ref:  ref,
		caps: caps,
	}
}

func (s *subscription) matches(subscriber any) bool {
	return s.ref.Is(subscriber)
}

func (s *subscription) alive() bool {
	return s.ref.Alive()
}

func (s *subscription) handles(messageType reflect.Type) bool {
	for pair := s.caps.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.accepts(messageType) {
			return true
		}
	}
	return false
}

// deliver invokes every capability compatible with the message, in discovery order.
// It returns false without delivering when the subscriber has been reclaimed.
func (s *subscription) deliver(message reflect.Value, onResult ResultHandler, observer Observer) bool {
	target, ok := s.ref.Value()
	if !ok {
		return false
	}

	receiver := reflect.ValueOf(target)
	messageType := message.Type()
	for pair := s.caps.Oldest(); pair != nil; pair = pair.Next() {
		c := pair.Value
		if !c.accepts(messageType) {
			continue
		}
		result, produced := c.invoke(receiver, message)
		observer.Delivered(messageType, receiver.Type())
		if produced {
			onResult(target, result)
		}
	}
	return true
}

// SubscriptionInfo describes a live subscription.
type SubscriptionInfo struct {
	ID             uuid.UUID
	SubscriberType string
	// Handles lists the declared message types in discovery order.
	Handles []string
	// Methods lists the handler method names, aligned with Handles.
	Methods []string
}

func (s *subscription) info() SubscriptionInfo {
	info := SubscriptionInfo{
		ID:             s.id,
		SubscriberType: reflectx.TypeName(s.ref.Type()),
		Handles:        make([]string, 0, s.caps.Len()),
		Methods:        make([]string, 0, s.caps.Len()),
	}
	for pair := s.caps.Oldest(); pair != nil; pair = pair.Next() {
		info.Handles = append(info.Handles, reflectx.TypeName(pair.Key))
		info.Methods = append(info.Methods, pair.Value.name)
	}
	return info
}
