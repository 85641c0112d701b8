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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameRoundsResolved    = "cointoss_rounds_resolved_total"
	MetricNameRoundDuration     = "cointoss_round_duration_seconds"
	MetricNameStakesRejected    = "cointoss_stakes_rejected_total"
	MetricNameItemsGranted      = "cointoss_items_granted_total"
	MetricNameSessionsStarted   = "cointoss_sessions_started_total"
	MetricNameSessionsFinished  = "cointoss_sessions_finished_total"
	MetricNameFinalScore        = "cointoss_session_final_score"
	MetricNameCatalogCacheHits  = "cointoss_catalog_cache_hits"
	MetricNameCatalogCacheMiss  = "cointoss_catalog_cache_misses"
	MetricNameCatalogCacheItems = "cointoss_catalog_cache_items"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextRoundsResolved    = "Total number of rounds resolved, by outcome"
	HelpTextRoundDuration     = "Round resolution latency in seconds"
	HelpTextStakesRejected    = "Total number of rejected stakes, by reason"
	HelpTextItemsGranted      = "Total units granted to players, by item and source"
	HelpTextSessionsStarted   = "Total number of sessions started, by category"
	HelpTextSessionsFinished  = "Total number of sessions finished, by category"
	HelpTextFinalScore        = "Score at the end of a session"
	HelpTextCatalogCacheHits  = "Catalog cache hits since start"
	HelpTextCatalogCacheMiss  = "Catalog cache misses since start"
	HelpTextCatalogCacheItems = "Entries currently held by the catalog cache"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelItem     = "item"
	LabelOutcome  = "outcome"
	LabelReason   = "reason"
	LabelSource   = "source"
	LabelCategory = "category"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ScoreBuckets covers final session scores
var ScoreBuckets = []float64{0, 1, 2, 5, 10, 20, 50, 100}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Unexpected event payload type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)

// UnmatchedRoute labels requests no route matched
const UnmatchedRoute = "unmatched"
