// Package prometheus wraps the Prometheus client behind small interfaces so
// that application code never depends on the concrete client types and tests
// can run against no-op metrics.
package prometheus

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
)

// Namespace prefixes every metric this process exports.
const Namespace = "legalaid"

// Collector registers metrics against a private registry and serves them
// over HTTP.  Registration never fails at the call site: a name collision or
// registry error logs and yields a no-op metric, so instrumented code paths
// stay unconditional.
type Collector interface {
	Counter(name, help string, labels ...string) CounterVec
	Gauge(name, help string, labels ...string) GaugeVec
	Histogram(name, help string, buckets []float64, labels ...string) HistogramVec
	Handler() http.Handler
}

// CounterVec is a labelled monotonic counter.
type CounterVec interface {
	WithLabelValues(lvs ...string) Counter
}

// Counter is one labelled counter series.
type Counter interface {
	Inc()
	Add(delta float64)
}

// GaugeVec is a labelled gauge.
type GaugeVec interface {
	WithLabelValues(lvs ...string) Gauge
}

// Gauge is one labelled gauge series.
type Gauge interface {
	Set(value float64)
	Inc()
	Dec()
}

// HistogramVec is a labelled histogram.
type HistogramVec interface {
	WithLabelValues(lvs ...string) Histogram
}

// Histogram is one labelled histogram series.
type Histogram interface {
	Observe(value float64)
}

type collector struct {
	mu       sync.Mutex
	registry *prometheus.Registry
	known    map[string]prometheus.Collector
	logger   logging.Logger
}

// NewCollector builds a Collector over a fresh registry with Go runtime and
// process collectors attached.
func NewCollector(logger logging.Logger) Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	return &collector{
		registry: registry,
		known:    make(map[string]prometheus.Collector),
		logger:   logger,
	}
}

func (c *collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// register returns the already-registered collector for name if one exists,
// otherwise registers fresh.
func (c *collector) register(name string, fresh prometheus.Collector) (prometheus.Collector, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.known[name]; ok {
		return existing, nil
	}
	if err := c.registry.Register(fresh); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "metric registration failed")
	}
	c.known[name] = fresh
	return fresh, nil
}

func (c *collector) Counter(name, help string, labels ...string) CounterVec {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace, Name: name, Help: help,
	}, labels)

	registered, err := c.register(name, vec)
	if err != nil {
		c.logger.Error("failed to register counter", logging.String("metric", name), logging.Err(err))
		return nopCounterVec{}
	}
	return counterVec{registered.(*prometheus.CounterVec)}
}

func (c *collector) Gauge(name, help string, labels ...string) GaugeVec {
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace, Name: name, Help: help,
	}, labels)

	registered, err := c.register(name, vec)
	if err != nil {
		c.logger.Error("failed to register gauge", logging.String("metric", name), logging.Err(err))
		return nopGaugeVec{}
	}
	return gaugeVec{registered.(*prometheus.GaugeVec)}
}

func (c *collector) Histogram(name, help string, buckets []float64, labels ...string) HistogramVec {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace, Name: name, Help: help, Buckets: buckets,
	}, labels)

	registered, err := c.register(name, vec)
	if err != nil {
		c.logger.Error("failed to register histogram", logging.String("metric", name), logging.Err(err))
		return nopHistogramVec{}
	}
	return histogramVec{registered.(*prometheus.HistogramVec)}
}

// Concrete wrappers.

type counterVec struct{ vec *prometheus.CounterVec }

func (v counterVec) WithLabelValues(lvs ...string) Counter { return v.vec.WithLabelValues(lvs...) }

type gaugeVec struct{ vec *prometheus.GaugeVec }

func (v gaugeVec) WithLabelValues(lvs ...string) Gauge { return v.vec.WithLabelValues(lvs...) }

type histogramVec struct{ vec *prometheus.HistogramVec }

func (v histogramVec) WithLabelValues(lvs ...string) Histogram {
	return v.vec.WithLabelValues(lvs...)
}

// No-op fallbacks, also used by NewNopCollector.

type nopCounterVec struct{}

func (nopCounterVec) WithLabelValues(...string) Counter { return nopCounter{} }

type nopCounter struct{}

func (nopCounter) Inc()        {}
func (nopCounter) Add(float64) {}

type nopGaugeVec struct{}

func (nopGaugeVec) WithLabelValues(...string) Gauge { return nopGauge{} }

type nopGauge struct{}

func (nopGauge) Set(float64) {}
func (nopGauge) Inc()        {}
func (nopGauge) Dec()        {}

type nopHistogramVec struct{}

func (nopHistogramVec) WithLabelValues(...string) Histogram { return nopHistogram{} }

type nopHistogram struct{}

func (nopHistogram) Observe(float64) {}

type nopCollector struct{}

func (nopCollector) Counter(string, string, ...string) CounterVec { return nopCounterVec{} }
func (nopCollector) Gauge(string, string, ...string) GaugeVec     { return nopGaugeVec{} }
func (nopCollector) Histogram(string, string, []float64, ...string) HistogramVec {
	return nopHistogramVec{}
}
func (nopCollector) Handler() http.Handler { return http.NotFoundHandler() }

// NewNopCollector returns a Collector that records nothing.  Used in tests
// and in commands that do not expose metrics.
func NewNopCollector() Collector { return nopCollector{} }

// Timer observes elapsed time into a histogram series.
type Timer struct {
	histogram Histogram
	start     time.Time
}

// NewTimer starts a timer against histogram.
func NewTimer(histogram Histogram) *Timer {
	return &Timer{histogram: histogram, start: time.Now()}
}

// ObserveDuration records the elapsed seconds since the timer started.
func (t *Timer) ObserveDuration() {
	if t.histogram != nil {
		t.histogram.Observe(time.Since(t.start).Seconds())
	}
}
