package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "casesim_http_requests_total"
	MetricNameHTTPRequestDuration  = "casesim_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "casesim_http_requests_in_flight"
	MetricNameDrawsTotal           = "casesim_draws_total"
	MetricNameCooldownRejections   = "casesim_cooldown_rejections_total"
	MetricNameCollectionCapSkips   = "casesim_collection_cap_skips_total"
	MetricNameTriviaCacheHits      = "casesim_trivia_cache_hits_total"
	MetricNameTriviaCacheMisses    = "casesim_trivia_cache_misses_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests by method, path and status"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds by method and path"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"
	HelpTextDrawsTotal           = "Total number of successful draws by winning tier"
	HelpTextCooldownRejections   = "Total number of draw requests rejected by the cooldown"
	HelpTextCollectionCapSkips   = "Total number of wins not recorded because the (user, tier) collection was at cap"
	HelpTextTriviaCacheHits      = "Total number of trivia requests served from the prefetch cache"
	HelpTextTriviaCacheMisses    = "Total number of trivia requests that found the prefetch cache empty"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelTier   = "tier"
)

// HTTPLatencyBuckets are the histogram buckets for request latency.
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
