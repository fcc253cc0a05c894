// Package stats records resolution activity counters, optionally exported
// in Prometheus format.
package stats

import (
	"errors"
	"strconv"
	"sync"
)

var (
	globalStats *statsHolder
	once        sync.Once

	// ErrStatsAlreadyInitialized is returned when Init is called twice.
	ErrStatsAlreadyInitialized = errors.New("stats already initialized")
)

type statsHolder struct {
	prom *prometheusStats
}

// Init initializes the stats package. prefix is prepended to every exported
// metric name.
func Init(prefix string) error {
	var done bool

	once.Do(func() {
		globalStats = &statsHolder{
			prom: newPrometheusStats(prefix),
		}
		done = true
	})

	if !done {
		return ErrStatsAlreadyInitialized
	}

	return nil
}

// Reset clears the package state so Init can be called again, for tests.
func Reset() {
	globalStats = nil
	once = sync.Once{}
}

// RecordResolution counts one URL resolution for the given context kind.
func RecordResolution(contextKind string) {
	if globalStats == nil {
		return
	}
	globalStats.prom.resolutions.WithLabelValues(contextKind).Inc()
}

// RecordRewrite counts one HTML rewrite pass and the attributes it changed.
func RecordRewrite(rewrittenAttributes int) {
	if globalStats == nil {
		return
	}
	globalStats.prom.rewrites.Inc()
	globalStats.prom.rewrittenAttributes.Add(float64(rewrittenAttributes))
}

// RecordRedirect counts one issued redirect by status code.
func RecordRedirect(status int) {
	if globalStats == nil {
		return
	}
	globalStats.prom.redirects.WithLabelValues(strconv.Itoa(status)).Inc()
}
