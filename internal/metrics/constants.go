package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Codec metric names
const (
	MetricNameItemSerializations   = "item_serializations_total"
	MetricNameItemDeserializations = "item_deserializations_total"
	MetricNameMetaHandlerFailures  = "meta_handler_failures_total"
)

// Snapshot metric names
const (
	MetricNameSnapshotsSaved  = "snapshots_saved_total"
	MetricNameSnapshotsLoaded = "snapshots_loaded_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Codec metric help text
const (
	HelpTextItemSerializations   = "Total number of items serialized"
	HelpTextItemDeserializations = "Total number of item deserialization attempts"
	HelpTextMetaHandlerFailures  = "Total number of isolated variant handler failures"
)

// Snapshot metric help text
const (
	HelpTextSnapshotsSaved  = "Total number of snapshots saved"
	HelpTextSnapshotsLoaded = "Total number of snapshots loaded"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelVariant = "variant"
)

// Values for the outcome label
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
