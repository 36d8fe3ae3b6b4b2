package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "devbook_http_requests_total"
	MetricNameHTTPRequestDuration  = "devbook_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "devbook_http_requests_in_flight"
)

// Business metric names
const (
	MetricNameDevelopersCreated         = "devbook_developers_created_total"
	MetricNameBookingsCreated           = "devbook_bookings_created_total"
	MetricNameBookingsCountCorrections  = "devbook_bookings_count_corrections_total"
	MetricNameBookingsCountReconcileRun = "devbook_bookings_count_reconcile_runs_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextDevelopersCreated         = "Total number of developer profiles created"
	HelpTextBookingsCreated           = "Total number of bookings registered"
	HelpTextBookingsCountCorrections  = "Total number of developers whose bookings_count was corrected"
	HelpTextBookingsCountReconcileRun = "Total number of bookings_count reconcile runs by result"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelResult = "result"
)

// Reconcile run results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// HTTPLatencyBuckets covers fast lookups up to slow searches.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
