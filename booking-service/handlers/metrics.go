package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler serves the Prometheus scrape endpoint. The OpenTelemetry
// Prometheus exporter registers into the default registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
