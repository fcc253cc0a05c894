package stats

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type prometheusStats struct {
	registry *prometheus.Registry

	resolutions         *prometheus.CounterVec
	rewrites            prometheus.Counter
	rewrittenAttributes prometheus.Counter
	redirects           *prometheus.CounterVec
}

func newPrometheusStats(prefix string) *prometheusStats {
	stats := &prometheusStats{
		registry: prometheus.NewRegistry(),
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: prefix + "resolutions_total", Help: "Total number of URL resolutions"},
			[]string{"context"},
		),
		rewrites: prometheus.NewCounter(
			prometheus.CounterOpts{Name: prefix + "rewrites_total", Help: "Total number of HTML rewrite passes"},
		),
		rewrittenAttributes: prometheus.NewCounter(
			prometheus.CounterOpts{Name: prefix + "rewritten_attributes_total", Help: "Total number of rewritten href/src attributes"},
		),
		redirects: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: prefix + "redirects_total", Help: "Total number of issued redirects"},
			[]string{"status"},
		),
	}

	stats.registry.MustRegister(
		stats.resolutions,
		stats.rewrites,
		stats.rewrittenAttributes,
		stats.redirects,
	)

	return stats
}

// PrometheusHandler returns the metrics endpoint handler.
func PrometheusHandler() http.Handler {
	if globalStats == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(globalStats.prom.registry, promhttp.HandlerOpts{})
}
