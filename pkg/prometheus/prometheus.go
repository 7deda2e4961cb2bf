// Package prometheus provides a fist.MetricsProvider backed by Prometheus
// collectors.
//
//	m := prometheus.New(prometheus.WithNamespace("checkout"))
//	if err := m.Register(promclient.DefaultRegisterer); err != nil {
//	    return err
//	}
//	rt := fist.Bind(initial, effects, fist.WithMetrics(m))
package prometheus

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/zoobzio/fist"
)

// Metrics records runtime events as Prometheus metrics.
type Metrics struct {
	namespace   string
	constLabels prometheus.Labels

	dispatches prometheus.Counter
	enters     prometheus.Counter
	raises     *prometheus.CounterVec
	suspends   prometheus.Counter
	resumeWait prometheus.Histogram
}

// Option configures Metrics.
type Option func(*Metrics)

// WithNamespace prefixes every metric name.
func WithNamespace(ns string) Option {
	return func(m *Metrics) {
		m.namespace = ns
	}
}

// WithRuntime adds a constant "runtime" label, for processes that bind
// several runtimes against one registry.
func WithRuntime(name string) Option {
	return func(m *Metrics) {
		m.constLabels = prometheus.Labels{"runtime": name}
	}
}

// New creates the collectors. They are not registered; see Register.
func New(opts ...Option) *Metrics {
	m := &Metrics{}
	for _, opt := range opts {
		opt(m)
	}

	m.dispatches = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "fist",
		Name:        "dispatches_total",
		Help:        "Actions submitted through the dispatcher.",
		ConstLabels: m.constLabels,
	})
	m.enters = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "fist",
		Name:        "enters_total",
		Help:        "Enter hook resolutions.",
		ConstLabels: m.constLabels,
	})
	m.raises = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "fist",
		Name:        "errors_raised_total",
		Help:        "Raised errors by whether OnError handled them.",
		ConstLabels: m.constLabels,
	}, []string{"handled"})
	m.suspends = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "fist",
		Name:        "suspensions_total",
		Help:        "Suspensions on deferred values.",
		ConstLabels: m.constLabels,
	})
	m.resumeWait = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "fist",
		Name:        "resume_wait_seconds",
		Help:        "Time between suspension and resumption of a continuation.",
		ConstLabels: m.constLabels,
		Buckets:     prometheus.DefBuckets,
	})
	return m
}

// Collectors returns every collector owned by m.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.dispatches, m.enters, m.raises, m.suspends, m.resumeWait}
}

// Register registers every collector with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	var errs []error
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Metrics) OnDispatch() { m.dispatches.Inc() }
func (m *Metrics) OnEnter()    { m.enters.Inc() }
func (m *Metrics) OnSuspend()  { m.suspends.Inc() }

func (m *Metrics) OnRaise(handled bool) {
	if handled {
		m.raises.WithLabelValues("true").Inc()
		return
	}
	m.raises.WithLabelValues("false").Inc()
}

func (m *Metrics) OnResume(wait time.Duration) {
	m.resumeWait.Observe(wait.Seconds())
}

var _ fist.MetricsProvider = (*Metrics)(nil)
