package services

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ledgerOperations     *prometheus.CounterVec
	reportsGenerated     *prometheus.CounterVec
	reportDuration       prometheus.Histogram
	reportTransactions   prometheus.Histogram
	exportsGenerated     *prometheus.CounterVec
	exportDuration       prometheus.Histogram
	chequeOperations     *prometheus.CounterVec
	chequesPending       prometheus.Gauge
	fundMovements        *prometheus.CounterVec
	fundBalance          prometheus.Gauge
	storeCollectionItems *prometheus.GaugeVec
}

var (
	metricsOnce     sync.Once
	metricsInstance *PrometheusMetrics
)

// NewPrometheusMetrics returns the process-wide recorder; collectors register once with the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	metricsOnce.Do(func() {
		metricsInstance = newPrometheusMetrics(prometheus.DefaultRegisterer)
	})
	return metricsInstance
}

func newPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		ledgerOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger write operations",
			},
			[]string{"operation", "status"},
		),
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_generated_total",
				Help: "Total number of general reports generated",
			},
			[]string{"status"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_milliseconds",
				Help:    "General report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		reportTransactions: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_transactions",
				Help:    "Number of transactions included in a generated report",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		exportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "export_generated_total",
				Help: "Total number of spreadsheet exports",
			},
			[]string{"kind", "status"},
		),
		exportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "export_duration_milliseconds",
				Help:    "Spreadsheet export duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		chequeOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cheque_operations_total",
				Help: "Total number of cheque register operations",
			},
			[]string{"operation"},
		),
		chequesPending: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "cheques_pending",
				Help: "Number of cheques not yet cleared",
			},
		),
		fundMovements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fund_movements_total",
				Help: "Total number of petty-cash movements recorded",
			},
			[]string{"kind"},
		),
		fundBalance: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fund_balance",
				Help: "Current petty-cash fund balance",
			},
		),
		storeCollectionItems: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "store_collection_items",
				Help: "Number of items held by each in-memory collection",
			},
			[]string{"collection"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "ledger_operation":
		m.ledgerOperations.WithLabelValues(tags["operation"], status).Inc()
	case "report_generated":
		if status != "" {
			m.reportsGenerated.WithLabelValues(status).Inc()
		}
	case "export_generated":
		m.exportsGenerated.WithLabelValues(tags["kind"], status).Inc()
	case "cheque_operation":
		if operation := tags["operation"]; operation != "" {
			m.chequeOperations.WithLabelValues(operation).Inc()
		}
	case "fund_movement":
		if kind := tags["kind"]; kind != "" {
			m.fundMovements.WithLabelValues(kind).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report_generation":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	case "export":
		m.exportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "report_transactions":
		m.reportTransactions.Observe(value)
	case "cheques_pending":
		m.chequesPending.Set(value)
	case "fund_balance":
		m.fundBalance.Set(value)
	case "store_collection_items":
		if collection := tags["collection"]; collection != "" {
			m.storeCollectionItems.WithLabelValues(collection).Set(value)
		}
	}
}
