// Package metrics exposes hoot aggregator activity as Prometheus metrics.
package metrics

import (
	"reflect"

	"github.com/casualjim/hoot"
	"github.com/casualjim/hoot/pkg/reflectx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ hoot.Observer = (*Recorder)(nil)

// Recorder is a hoot.Observer backed by Prometheus collectors.
type Recorder struct {
	RegistrySize    prometheus.Gauge
	PublishedTotal  *prometheus.CounterVec
	DeliveriesTotal *prometheus.CounterVec
}

// New registers the aggregator metrics with registerer.
// A nil registerer uses prometheus.DefaultRegisterer.
func New(registerer prometheus.Registerer) *Recorder {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &Recorder{
		RegistrySize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hoot_subscriptions",
			Help: "Number of entries in the subscription registry",
		}),
		PublishedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hoot_messages_published_total",
				Help: "Total number of messages whose delivery started",
			},
			[]string{"message_type"},
		),
		DeliveriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hoot_deliveries_total",
				Help: "Total number of handler invocations",
			},
			[]string{"message_type", "subscriber_type"},
		),
	}
}

// RegistryChanged implements hoot.Observer.
func (r *Recorder) RegistryChanged(size int) {
	r.RegistrySize.Set(float64(size))
}

// Published implements hoot.Observer.
func (r *Recorder) Published(messageType reflect.Type) {
	r.PublishedTotal.WithLabelValues(reflectx.TypeName(messageType)).Inc()
}

// Delivered implements hoot.Observer.
func (r *Recorder) Delivered(messageType, subscriberType reflect.Type) {
	r.DeliveriesTotal.WithLabelValues(reflectx.TypeName(messageType), reflectx.TypeName(subscriberType)).Inc()
}
