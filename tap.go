package hoot

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/casualjim/hoot/pkg/jsonx"
	"github.com/casualjim/hoot/pkg/slogx"
)

// Tap is a subscriber that logs every message published on the aggregator it is subscribed
// to. Its handler accepts any, so every message type is compatible with it.
//
// Like any subscriber, a Tap is only referenced weakly: keep it reachable for as long as it
// should keep logging.
type Tap struct {
	logger *slog.Logger
	level  slog.Level
	seen   atomic.Int64
}

// NewTap creates a Tap logging at debug level. A nil logger uses slog.Default().
func NewTap(logger *slog.Logger) *Tap {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tap{logger: logger.With(slogx.LoggerName("hoot.tap")), level: slog.LevelDebug}
}

// AtLevel changes the level messages are logged at. Call it before subscribing the tap.
func (t *Tap) AtLevel(level slog.Level) *Tap {
	t.level = level
	return t
}

// Handle logs message as a JSON envelope.
func (t *Tap) Handle(message any) {
	t.seen.Add(1)
	b, err := jsonx.Envelope(message)
	if err != nil {
		t.logger.Warn("message not encodable", slogx.Error(err))
		return
	}
	t.logger.Log(context.Background(), t.level, "message", slog.String("envelope", string(b)))
}

// Count returns the number of messages the tap received.
func (t *Tap) Count() int64 {
	return t.seen.Load()
}
