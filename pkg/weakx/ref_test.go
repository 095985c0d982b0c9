package weakx

import (
	"reflect"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type target struct {
	name  string
	notes []string
}

type empty struct{}

func TestMake(t *testing.T) {
	t.Run("rejects nil", func(t *testing.T) {
		_, err := Make(nil)
		assert.ErrorIs(t, err, ErrNotPointer)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		var p *target
		_, err := Make(p)
		assert.ErrorIs(t, err, ErrNotPointer)
	})

	t.Run("rejects non-pointer", func(t *testing.T) {
		_, err := Make(target{name: "value"})
		assert.ErrorIs(t, err, ErrNotPointer)
	})

	t.Run("rejects zero-sized", func(t *testing.T) {
		_, err := Make(&empty{})
		assert.ErrorIs(t, err, ErrZeroSized)
	})

	t.Run("resolves to the original pointer", func(t *testing.T) {
		tgt := &target{name: "alive"}
		ref, err := Make(tgt)
		require.NoError(t, err)

		v, ok := ref.Value()
		require.True(t, ok)
		assert.Same(t, tgt, v.(*target))
		assert.True(t, ref.Alive())
		assert.Equal(t, "*weakx.target", ref.Type().String())
		runtime.KeepAlive(tgt)
	})
}

func TestRef_Is(t *testing.T) {
	a := &target{name: "a"}
	b := &target{name: "b"}
	ref, err := Make(a)
	require.NoError(t, err)

	assert.True(t, ref.Is(a))
	assert.False(t, ref.Is(b))
	assert.False(t, ref.Is(nil))
	assert.False(t, ref.Is(*a))
	assert.False(t, Ref{}.Is(a))
	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
}

func TestRef_Reclaimed(t *testing.T) {
	ref := func() Ref {
		r, err := Make(&target{name: "gone", notes: []string{"x"}})
		require.NoError(t, err)
		return r
	}()

	runtime.GC()
	runtime.GC()

	_, ok := ref.Value()
	assert.False(t, ok)
	assert.False(t, ref.Alive())
}

func TestRef_Zero(t *testing.T) {
	var ref Ref
	_, ok := ref.Value()
	assert.False(t, ok)
	assert.False(t, ref.Alive())
}

type counter struct{ n int }

type pair struct {
	a, b int32
}

type global struct {
	name string
	hits int
}

var pinned = global{name: "package level"}

func TestTinyAllocated(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"single int", reflect.TypeFor[counter](), true},
		{"two int32", reflect.TypeFor[pair](), true},
		{"byte array", reflect.TypeFor[[15]byte](), true},
		{"16 bytes", reflect.TypeFor[[2]int64](), false},
		{"string field", reflect.TypeFor[struct{ s string }](), false},
		{"pointer field", reflect.TypeFor[struct{ p *int }](), false},
		{"pointer array", reflect.TypeFor[[1]*int](), false},
		{"zero sized", reflect.TypeFor[empty](), false},
		{"target", reflect.TypeFor[target](), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TinyAllocated(tt.typ))
		})
	}
}

func TestRef_MayOutlive(t *testing.T) {
	c := &counter{n: 1}
	small, err := Make(c)
	require.NoError(t, err)
	assert.True(t, small.MayOutlive())

	tgt := &target{name: "large"}
	large, err := Make(tgt)
	require.NoError(t, err)
	assert.False(t, large.MayOutlive())

	assert.False(t, Ref{}.MayOutlive())
	runtime.KeepAlive(c)
	runtime.KeepAlive(tgt)
}

func TestRef_PackageLevel(t *testing.T) {
	ref, err := Make(&pinned)
	require.NoError(t, err)

	runtime.GC()
	runtime.GC()

	v, ok := ref.Value()
	require.True(t, ok, "package-level variables are never reclaimed")
	assert.Same(t, &pinned, v.(*global))
	assert.True(t, ref.Is(&pinned))
}
