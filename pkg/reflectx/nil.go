package reflectx

import "reflect"

// IsNil reports whether v is nil or holds a nil pointer, map, slice, channel, func or interface.
// Unlike IsZero it treats 0, "" and empty structs as present values.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	return IsNilValue(reflect.ValueOf(v))
}

// IsNilValue is IsNil for a reflect.Value. The invalid Value counts as nil.
func IsNilValue(val reflect.Value) bool {
	if !val.IsValid() {
		return true
	}
	switch val.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return val.IsNil()
	}
	return false
}

// TypeName renders a type for logs and diagnostics.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
