package slogx

import (
	"errors"
	"net/netip"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	assert.Equal(t, "error", Error(errors.New("boom")).Key)
	assert.Equal(t, "boom", Error(errors.New("boom")).Value.String())
	assert.Equal(t, "<nil>", Error(nil).Value.String())
}

func TestStringer(t *testing.T) {
	attr := Stringer("addr", netip.MustParseAddr("10.0.0.1"))
	assert.Equal(t, "addr", attr.Key)
	assert.Equal(t, "10.0.0.1", attr.Value.String())
}

func TestType(t *testing.T) {
	assert.Equal(t, "*errors.errorString", Type("t", reflect.TypeOf(errors.New("x"))).Value.String())
	assert.Equal(t, "<nil>", Type("t", nil).Value.String())
}

func TestPanic(t *testing.T) {
	attr := Panic(errors.New("kaput"))
	assert.Equal(t, "panic", attr.Key)
	assert.Equal(t, "kaput", attr.Value.String())
}

func TestLoggerName(t *testing.T) {
	attr := LoggerName("hoot.tap")
	assert.Equal(t, KeyLoggerName, attr.Key)
	assert.Equal(t, "hoot.tap", attr.Value.String())
}
