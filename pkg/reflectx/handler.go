package reflectx

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// HandlerPrefix is the method name prefix that marks a message handler.
const HandlerPrefix = "Handle"

// IsHandlerName reports whether name is "Handle" or "Handle" followed by a suffix that starts
// with an upper-case letter or a digit, e.g. HandleOrderPlaced or Handle2.
// Names like Handler or Handles are not handler names.
func IsHandlerName(name string) bool {
	if len(name) < len(HandlerPrefix) || name[:len(HandlerPrefix)] != HandlerPrefix {
		return false
	}
	rest := name[len(HandlerPrefix):]
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsUpper(r) || unicode.IsDigit(r)
}

// HandlerParam returns the message type accepted by a method obtained from a concrete
// type's method set (so In(0) is the receiver).
//
// A handler method is exported, has a handler name, takes exactly one non-variadic
// argument and returns at most one value.
func HandlerParam(m reflect.Method) (reflect.Type, bool) {
	if !m.IsExported() || !IsHandlerName(m.Name) {
		return nil, false
	}
	mt := m.Type
	if mt.Kind() != reflect.Func || mt.IsVariadic() || mt.NumIn() != 2 || mt.NumOut() > 1 {
		return nil, false
	}
	return mt.In(1), true
}

// ReturnsValue reports whether a handler method produces a result.
func ReturnsValue(m reflect.Method) bool {
	return m.Type.NumOut() == 1
}
