// Package metrics exposes Prometheus collectors on a private registry.
// All methods are safe on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	inFlight     prometheus.Gauge

	farmersRegistered prometheus.Counter
	cropsAdded        prometheus.Counter
	cropsRemoved      prometheus.Counter
	billingRequests   prometheus.Counter
}

func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Requests currently being served",
		}),
		farmersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "farmers_registered_total",
			Help:      "Farmers registered",
		}),
		cropsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crops_added_total",
			Help:      "Crops added",
		}),
		cropsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crops_removed_total",
			Help:      "Crops removed",
		}),
		billingRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drone_billing_computations_total",
			Help:      "Drone usage billing computations",
		}),
	}
	reg.MustRegister(
		m.httpRequests, m.httpDuration, m.inFlight,
		m.farmersRegistered, m.cropsAdded, m.cropsRemoved, m.billingRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) RecordHTTPRequest(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) IncInFlight() {
	if m != nil {
		m.inFlight.Inc()
	}
}

func (m *Metrics) DecInFlight() {
	if m != nil {
		m.inFlight.Dec()
	}
}

func (m *Metrics) FarmerRegistered() {
	if m != nil {
		m.farmersRegistered.Inc()
	}
}

func (m *Metrics) CropAdded() {
	if m != nil {
		m.cropsAdded.Inc()
	}
}

func (m *Metrics) CropRemoved() {
	if m != nil {
		m.cropsRemoved.Inc()
	}
}

func (m *Metrics) BillingComputed() {
	if m != nil {
		m.billingRequests.Inc()
	}
}
