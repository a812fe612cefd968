// Package promobserver counts engine events with Prometheus metrics.
package promobserver

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/djdv/go-pagecache"
)

// Metric names exported by the observer.
const (
	MetricEvents   = "pagecache_events_total"
	MetricResident = "pagecache_resident_pages"
)

// Observer implements pagecache.Observer using Prometheus metrics.
// Observers for different engines may share a registry;
// their series are distinguished by the "engine" label.
type Observer[Key comparable] struct {
	events   *prometheus.CounterVec
	resident prometheus.Gauge
}

// Compile-time check that Observer implements pagecache.Observer.
var _ pagecache.Observer[int] = (*Observer[int])(nil)

// New creates a new Prometheus observer labelled with engine.
// If registry is nil, prometheus.DefaultRegisterer is used.
func New[Key comparable](registry prometheus.Registerer, engine string) (*Observer[Key], error) {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	events, err := register(registry, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricEvents,
		Help: "Replacement engine events by operation.",
	}, []string{"engine", "op"}))
	if err != nil {
		return nil, err
	}
	resident, err := register(registry, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: MetricResident,
		Help: "Resident page count after the latest event.",
	}, []string{"engine"}))
	if err != nil {
		return nil, err
	}
	curried, err := events.CurryWith(prometheus.Labels{"engine": engine})
	if err != nil {
		return nil, err
	}
	return &Observer[Key]{
		events:   curried,
		resident: resident.WithLabelValues(engine),
	}, nil
}

// register returns the already registered collector
// when an identical one exists.
func register[C prometheus.Collector](registry prometheus.Registerer, collector C) (C, error) {
	err := registry.Register(collector)
	if err == nil {
		return collector, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	var zero C
	return zero, err
}

// Observe counts the event and records the resident count.
func (o *Observer[Key]) Observe(event pagecache.Event[Key]) {
	o.events.WithLabelValues(event.Op.String()).Inc()
	o.resident.Set(float64(event.Resident))
}
