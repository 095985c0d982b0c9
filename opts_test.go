package hoot

import (
	"bytes"
	"log/slog"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	sizes     []int
	published []reflect.Type
	delivered int
}

func (c *countingObserver) RegistryChanged(size int)             { c.sizes = append(c.sizes, size) }
func (c *countingObserver) Published(t reflect.Type)             { c.published = append(c.published, t) }
func (c *countingObserver) Delivered(reflect.Type, reflect.Type) { c.delivered++ }

type note struct{ text string }

type reader struct{ got []string }

func (r *reader) HandleNote(n note) { r.got = append(r.got, n.text) }

func TestDefaultSettings(t *testing.T) {
	agg := New()
	assert.NotNil(t, agg.logger)
	assert.Equal(t, noopObserver{}, agg.observer)
	assert.Nil(t, agg.resultHandler)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	agg := New(WithLogger(logger))
	r := &reader{}
	require.NoError(t, agg.Subscribe(r))
	require.NoError(t, agg.Unsubscribe(r))

	out := buf.String()
	assert.Contains(t, out, "msg=subscribed")
	assert.Contains(t, out, "subscriber=*hoot.reader")
	assert.Contains(t, out, "msg=unsubscribed")

	assert.NotNil(t, New(WithLogger(nil)).logger, "nil keeps the default")
}

func TestWithObserver(t *testing.T) {
	obs := &countingObserver{}
	agg := New(WithObserver(obs))
	a, b := &reader{}, &reader{}

	require.NoError(t, agg.Subscribe(a))
	require.NoError(t, agg.Subscribe(b))
	require.NoError(t, agg.Subscribe(a))
	require.NoError(t, agg.PublishOnCurrentGoroutine(note{text: "hi"}))
	require.NoError(t, agg.Unsubscribe(a))

	assert.Equal(t, []int{1, 2, 1}, obs.sizes)
	assert.Equal(t, []reflect.Type{reflect.TypeFor[note]()}, obs.published)
	assert.Equal(t, 2, obs.delivered)
	assert.Equal(t, []string{"hi"}, a.got)
	assert.Equal(t, []string{"hi"}, b.got)

	assert.Equal(t, noopObserver{}, New(WithObserver(nil)).observer)
}

func TestWithResultHandler(t *testing.T) {
	var got []any
	agg := New(WithResultHandler(func(_, result any) { got = append(got, result) }))
	require.NotNil(t, agg.resultHandler)

	agg.results()(nil, "x")
	assert.Equal(t, []any{"x"}, got)
}
