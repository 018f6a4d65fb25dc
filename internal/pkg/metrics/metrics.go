package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "commerce"

// Workflow outcomes are labelled with errs.Code: "OK" on success, otherwise
// the error kind, so oversell attempts and duplicate refunds show up apart
// from infrastructure failures.
type Metrics struct {
	Purchases       *prometheus.CounterVec
	Refunds         *prometheus.CounterVec
	TxRetries       *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Purchases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchases_total",
			Help:      "Purchase placement attempts by entry path and outcome.",
		}, []string{"path", "outcome"}),
		Refunds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refunds_total",
			Help:      "Refund attempts by outcome.",
		}, []string{"outcome"}),
		TxRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tx_retries_total",
			Help:      "Unit of work re-executions by reason.",
		}, []string{"reason"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route template and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.Purchases, m.Refunds, m.TxRetries, m.RequestDuration)
	return m
}

// NewNop returns metrics bound to a throwaway registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
