package slogx

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/casualjim/hoot/pkg/reflectx"
)

// Error returns a slog.Attr representing the provided error.
// The attribute key is "error" and the value is the error's message.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}

// Stringer creates a slog.Attr with the provided key and the string representation
// of the given fmt.Stringer value.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}

// Type renders a reflect.Type under key. A nil type renders as "<nil>".
func Type(key string, t reflect.Type) slog.Attr {
	return slog.String(key, reflectx.TypeName(t))
}

// Panic renders a recovered panic value.
func Panic(recovered any) slog.Attr {
	return slog.String("panic", fmt.Sprint(recovered))
}

const (
	// KeyLoggerName is the key for the logger name attribute.
	KeyLoggerName = "logger"
)

// LoggerName creates a slog.Attr with the provided logger name.
// The attribute key is defined by KeyLoggerName.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}
