package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHandlerName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Handle", true},
		{"HandleOrderPlaced", true},
		{"Handle2", true},
		{"HandleÜber", true},
		{"Handler", false},
		{"Handles", false},
		{"Handl", false},
		{"handleOrder", false},
		{"OnOrder", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHandlerName(tt.name))
		})
	}
}

type message struct{ ID int }

type subject struct{ n int }

func (s *subject) Handle(any)                          {}
func (s *subject) HandleMessage(message) error         { return nil }
func (s *subject) HandleNothing()                      {}
func (s *subject) HandleTwo(message, message)          {}
func (s *subject) HandleVariadic(...message)           {}
func (s *subject) HandleTwoResults(message) (int, int) { return 0, 0 }
func (s *subject) Handler(message)                     {}

func TestHandlerParam(t *testing.T) {
	typ := reflect.TypeFor[*subject]()
	method := func(name string) reflect.Method {
		m, ok := typ.MethodByName(name)
		if !ok {
			t.Fatalf("no method %s", name)
		}
		return m
	}

	param, ok := HandlerParam(method("Handle"))
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeFor[any](), param)
	assert.False(t, ReturnsValue(method("Handle")))

	param, ok = HandlerParam(method("HandleMessage"))
	assert.True(t, ok)
	assert.Equal(t, reflect.TypeFor[message](), param)
	assert.True(t, ReturnsValue(method("HandleMessage")))

	for _, name := range []string{"HandleNothing", "HandleTwo", "HandleVariadic", "HandleTwoResults", "Handler"} {
		_, ok := HandlerParam(method(name))
		assert.False(t, ok, name)
	}
}
