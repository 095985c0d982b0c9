package hoot

import (
	"log/slog"

	"github.com/casualjim/hoot/pkg/slogx"
	"github.com/fogfish/opts"
)

// Option configures an Aggregator created with New.
type Option = opts.Option[settings]

type settings struct {
	logger        *slog.Logger
	resultHandler ResultHandler
	observer      Observer
}

func defaultSettings() settings {
	return settings{
		logger:   slog.Default().With(slogx.LoggerName("hoot")),
		observer: noopObserver{},
	}
}

// WithResultHandler routes handler results of this aggregator to fn instead of the
// process-wide hook installed with SetResultHandler.
var WithResultHandler = opts.ForName[settings, ResultHandler]("resultHandler")

// WithLogger sets the logger used for subscription lifecycle messages.
// A nil logger keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return opts.Type[settings](func(s *settings) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	})
}

// WithObserver installs an Observer, for example a metrics.Recorder.
// A nil observer keeps the no-op default.
func WithObserver(observer Observer) Option {
	return opts.Type[settings](func(s *settings) error {
		if observer != nil {
			s.observer = observer
		}
		return nil
	})
}
