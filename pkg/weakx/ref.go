package weakx

import (
	"errors"
	"reflect"
	"unsafe"
	"weak"
)

var (
	// ErrNotPointer is returned when the value to reference is not a non-nil pointer.
	ErrNotPointer = errors.New("weakx: value must be a non-nil pointer")

	// ErrZeroSized is returned for pointers to zero-sized values. Those all share one
	// address and are never reclaimed, so they have no identity to track.
	ErrZeroSized = errors.New("weakx: value must not be zero-sized")
)

// Ref is a weak reference to a pointer of any type. It never keeps its target alive.
//
// Whether the target is ever reported dead depends on the runtime:
//   - pointers to package-level variables never die.
//   - values smaller than 16 bytes without pointers (see TinyAllocated) may share a memory
//     block with unrelated allocations and stay alive for as long as any of them does.
//
// The zero Ref is dead.
type Ref struct {
	ptr weak.Pointer[byte]
	typ reflect.Type
}

// Make creates a weak reference to v, which must be a non-nil pointer to a non-zero-sized value.
func Make(v any) (Ref, error) {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return Ref{}, ErrNotPointer
	}
	if val.Type().Elem().Size() == 0 {
		return Ref{}, ErrZeroSized
	}
	return Ref{
		ptr: weak.Make((*byte)(val.UnsafePointer())),
		typ: val.Type(),
	}, nil
}

// tinySize is the size below which the runtime packs pointer-free allocations together.
const tinySize = 16

// TinyAllocated reports whether values of type t are small and pointer-free enough for the
// runtime to pack them into a block shared with other allocations. Weak references to such
// values can outlive the last strong reference to them.
func TinyAllocated(t reflect.Type) bool {
	if t == nil {
		return false
	}
	size := t.Size()
	return size > 0 && size < tinySize && !hasPointers(t)
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// MayOutlive reports whether the target may be kept alive by unrelated allocations,
// see TinyAllocated.
func (r Ref) MayOutlive() bool {
	return r.typ != nil && TinyAllocated(r.typ.Elem())
}

// Value returns the referenced pointer, typed as it was when the reference was made,
// or false once the target has been reclaimed.
func (r Ref) Value() (any, bool) {
	if r.typ == nil {
		return nil, false
	}
	p := r.ptr.Value()
	if p == nil {
		return nil, false
	}
	return reflect.NewAt(r.typ.Elem(), unsafe.Pointer(p)).Interface(), true
}

// Alive reports whether the target is still reachable.
func (r Ref) Alive() bool {
	return r.typ != nil && r.ptr.Value() != nil
}

// Is reports whether the reference currently resolves to exactly v:
// same address and same dynamic type.
func (r Ref) Is(v any) bool {
	if r.typ == nil || v == nil {
		return false
	}
	val := reflect.ValueOf(v)
	if val.Type() != r.typ || val.Kind() != reflect.Pointer || val.IsNil() {
		return false
	}
	p := r.ptr.Value()
	return p != nil && unsafe.Pointer(p) == val.UnsafePointer()
}

// Type is the pointer type of the referenced value.
func (r Ref) Type() reflect.Type {
	return r.typ
}
