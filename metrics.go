package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is a snapshot of the last analysis in Prometheus form, written as a
// textfile for node-exporter's textfile collector.
type Metrics struct {
	registry *prometheus.Registry

	DocumentsTotal      prometheus.Gauge
	AverageQuality      prometheus.Gauge
	DocumentsByCategory *prometheus.GaugeVec
	DuplicateGroups     prometheus.Gauge
	IssuesTotal         *prometheus.GaugeVec
	LastRunTimestamp    prometheus.Gauge
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		DocumentsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name: "docs_documents_total",
			Help: "Number of markdown documents found by the last scan",
		}),
		AverageQuality: factory.NewGauge(prometheus.GaugeOpts{
			Name: "docs_average_quality_score",
			Help: "Average heuristic quality score (0-100)",
		}),
		DocumentsByCategory: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "docs_documents_by_category",
			Help: "Number of documents per assigned category",
		}, []string{"category"}),
		DuplicateGroups: factory.NewGauge(prometheus.GaugeOpts{
			Name: "docs_duplicate_groups",
			Help: "Number of exact and near-duplicate groups",
		}),
		IssuesTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "docs_issues_total",
			Help: "Number of documents flagged per issue type",
		}, []string{"issue"}),
		LastRunTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Name: "docs_last_run_timestamp_seconds",
			Help: "Unix time of the last analysis",
		}),
	}
}

func (m *Metrics) Observe(r *Report) {
	m.DocumentsTotal.Set(float64(r.TotalDocuments))
	m.AverageQuality.Set(r.Patterns.AverageQuality)
	m.DuplicateGroups.Set(float64(len(r.Duplicates)))
	m.LastRunTimestamp.Set(float64(r.ScanDate.Unix()))

	m.DocumentsByCategory.Reset()
	for c, n := range r.Patterns.Categories {
		m.DocumentsByCategory.WithLabelValues(c).Set(float64(n))
	}

	m.IssuesTotal.Reset()
	for _, issue := range r.Patterns.Issues.ordered() {
		m.IssuesTotal.WithLabelValues(issue.kind).Set(float64(len(issue.files)))
	}
}

func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}

	return nil
}
