package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// NavigationFallbacks counts requests served the hardcoded default
	// navigation instead of a menu from the export.
	NavigationFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "navigation_fallback_total",
		Help: "Times the default navigation was served instead of an exported menu.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method and status.",
	}, []string{"method", "status"})

	contactSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contact_submissions_total",
		Help: "Accepted contact form submissions.",
	})
)

func CountRequest(method, status string) {
	httpRequests.WithLabelValues(method, status).Inc()
}

func CountContactSubmission() {
	contactSubmissions.Inc()
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
