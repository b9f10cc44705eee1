package prometheus

import (
	"strconv"
	"time"
)

// AppMetrics holds every metric the assistant exports.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Analysis pipeline
	ClassificationsTotal  CounterVec
	EntitiesExtracted     HistogramVec
	ComposeDuration       HistogramVec
	AnalysisRequestsTotal CounterVec

	// Dialog
	DialogTurnsTotal  CounterVec
	ActiveSessions    GaugeVec
	SessionsCleared   CounterVec
	DialogReplyLength HistogramVec

	// Supporting services
	TranslationsTotal  CounterVec
	DocumentsProcessed CounterVec
	DocumentSizeBytes  HistogramVec
	FeedbackTotal      CounterVec

	// Infrastructure
	DBQueryDuration     HistogramVec
	EventsPublished     CounterVec
	ObjectStoreDuration HistogramVec
	ErrorsTotal         CounterVec
}

// Histogram buckets.
var (
	httpDurationBuckets   = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
	dbDurationBuckets     = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}
	entityCountBuckets    = []float64{0, 1, 2, 5, 10, 20, 50}
	replyLengthBuckets    = []float64{50, 100, 250, 500, 1000, 2500}
	documentSizeBuckets   = []float64{1 << 10, 10 << 10, 100 << 10, 1 << 20, 5 << 20, 10 << 20}
	objectStoreBuckets    = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5}
	composeDurationBucket = []float64{.0001, .0005, .001, .005, .01, .05, .1}
)

// NewAppMetrics registers the full metric set against collector.
func NewAppMetrics(collector Collector) *AppMetrics {
	return &AppMetrics{
		HTTPRequestsTotal:   collector.Counter("http_requests_total", "HTTP requests served", "method", "path", "status"),
		HTTPRequestDuration: collector.Histogram("http_request_duration_seconds", "HTTP request duration", httpDurationBuckets, "method", "path"),
		HTTPActiveRequests:  collector.Gauge("http_active_requests", "In-flight HTTP requests", "method"),

		ClassificationsTotal:  collector.Counter("classifications_total", "Domain classifications by result", "domain"),
		EntitiesExtracted:     collector.Histogram("entities_extracted", "Entities found per extraction", entityCountBuckets, "source"),
		ComposeDuration:       collector.Histogram("compose_duration_seconds", "Advisory composition duration", composeDurationBucket, "domain"),
		AnalysisRequestsTotal: collector.Counter("analysis_requests_total", "Full analysis pipeline runs", "domain", "status"),

		DialogTurnsTotal:  collector.Counter("dialog_turns_total", "Dialog turns by matched rule", "rule"),
		ActiveSessions:    collector.Gauge("dialog_active_sessions", "Live dialog sessions", "backend"),
		SessionsCleared:   collector.Counter("dialog_sessions_cleared_total", "Explicitly cleared sessions"),
		DialogReplyLength: collector.Histogram("dialog_reply_chars", "Dialog reply length in characters", replyLengthBuckets),

		TranslationsTotal:  collector.Counter("translations_total", "Translations by language pair and status", "source", "target", "status"),
		DocumentsProcessed: collector.Counter("documents_processed_total", "Documents processed by format and status", "format", "status"),
		DocumentSizeBytes:  collector.Histogram("document_size_bytes", "Uploaded document size", documentSizeBuckets, "format"),
		FeedbackTotal:      collector.Counter("feedback_total", "Feedback entries by rating", "rating", "domain"),

		DBQueryDuration:     collector.Histogram("db_query_duration_seconds", "Database query duration", dbDurationBuckets, "operation"),
		EventsPublished:     collector.Counter("events_published_total", "Analytics events published", "topic", "status"),
		ObjectStoreDuration: collector.Histogram("object_store_duration_seconds", "Object storage operation duration", objectStoreBuckets, "operation"),
		ErrorsTotal:         collector.Counter("errors_total", "Errors by component and code", "component", "code"),
	}
}

// NewNopAppMetrics builds an AppMetrics that records nothing.
func NewNopAppMetrics() *AppMetrics {
	return NewAppMetrics(NewNopCollector())
}

// RecordHTTPRequest updates the HTTP counters for one served request.
func (m *AppMetrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordAnalysis records one pipeline run.
func (m *AppMetrics) RecordAnalysis(domain string, entityCount int, ok bool) {
	m.ClassificationsTotal.WithLabelValues(domain).Inc()
	m.EntitiesExtracted.WithLabelValues("analysis").Observe(float64(entityCount))
	m.AnalysisRequestsTotal.WithLabelValues(domain, statusLabel(ok)).Inc()
}

// RecordFeedback records one stored feedback entry.
func (m *AppMetrics) RecordFeedback(rating int, domain string) {
	m.FeedbackTotal.WithLabelValues(strconv.Itoa(rating), domain).Inc()
}

// RecordError counts an error against a component.
func (m *AppMetrics) RecordError(component, code string) {
	m.ErrorsTotal.WithLabelValues(component, code).Inc()
}

func statusLabel(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
