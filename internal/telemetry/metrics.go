package telemetry

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var apiRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "podly_api_requests_total",
		Help: "Booking service API requests by path and HTTP status.",
	},
	[]string{"path", "status"},
)

// ObserveAPIRequest records one API round trip. Status 0 means the request
// never produced a response (transport failure).
func ObserveAPIRequest(path string, status int) {
	apiRequests.WithLabelValues(path, strconv.Itoa(status)).Inc()
}

// StartMetricsServer starts a HTTP server exposing Prometheus metrics.
func StartMetricsServer(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
