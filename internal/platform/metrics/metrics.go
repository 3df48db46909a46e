package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SubmissionsAccepted prometheus.Counter
	SubmissionsRejected *prometheus.CounterVec
	DocumentsUploaded   prometheus.Counter
	DraftSaves          prometheus.Counter
	SubmissionDuration  prometheus.Histogram
}

// New creates and registers all Prometheus metrics on the default registry.
// Call it once per process; components treat a nil *Metrics as disabled.
func New() *Metrics {
	return &Metrics{
		SubmissionsAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "onboard_submissions_accepted_total",
			Help: "Total number of employee submissions accepted end to end",
		}),
		SubmissionsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "onboard_submissions_rejected_total",
			Help: "Total number of employee submissions rejected, by stage",
		}, []string{"stage"}),
		DocumentsUploaded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "onboard_documents_uploaded_total",
			Help: "Total number of documents stored in the blob store",
		}),
		DraftSaves: promauto.NewCounter(prometheus.CounterOpts{
			Name: "onboard_draft_saves_total",
			Help: "Total number of draft slot writes",
		}),
		SubmissionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "onboard_submission_duration_seconds",
			Help:    "End to end duration of submission attempts",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// RecordAccepted increments the accepted counter.
func (m *Metrics) RecordAccepted() {
	if m == nil {
		return
	}
	m.SubmissionsAccepted.Inc()
}

// RecordRejected increments the rejected counter for a pipeline stage.
func (m *Metrics) RecordRejected(stage string) {
	if m == nil {
		return
	}
	m.SubmissionsRejected.WithLabelValues(stage).Inc()
}

// RecordDocumentUploaded increments the uploaded-documents counter.
func (m *Metrics) RecordDocumentUploaded() {
	if m == nil {
		return
	}
	m.DocumentsUploaded.Inc()
}

// RecordDraftSave increments the draft-save counter.
func (m *Metrics) RecordDraftSave() {
	if m == nil {
		return
	}
	m.DraftSaves.Inc()
}

// ObserveSubmissionDuration records one submission attempt duration.
func (m *Metrics) ObserveSubmissionDuration(seconds float64) {
	if m == nil {
		return
	}
	m.SubmissionDuration.Observe(seconds)
}
