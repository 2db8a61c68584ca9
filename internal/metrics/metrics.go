// Package metrics exposes the store's derived counts as prometheus gauges.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Sink is a store.CountSink backed by prometheus gauges.
type Sink struct {
	artworks       prometheus.Gauge
	activeRequests prometheus.Gauge
}

// NewSink creates the gauges and registers them with reg.
func NewSink(reg prometheus.Registerer) *Sink {
	s := &Sink{
		artworks: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "atelier_artworks_total",
			Help: "Number of artworks currently in the store.",
		}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "atelier_active_requests_total",
			Help: "Number of challenge requests not yet completed.",
		}),
	}
	reg.MustRegister(s.artworks, s.activeRequests)
	return s
}

// SetArtworkCount implements store.CountSink.
func (s *Sink) SetArtworkCount(n int) {
	s.artworks.Set(float64(n))
}

// SetActiveRequestCount implements store.CountSink.
func (s *Sink) SetActiveRequestCount(n int) {
	s.activeRequests.Set(float64(n))
}

// Counts is a plain in-process sink used by CLI commands that only need
// the latest values.
type Counts struct {
	Artworks       int
	ActiveRequests int
}

// SetArtworkCount implements store.CountSink.
func (c *Counts) SetArtworkCount(n int) {
	c.Artworks = n
}

// SetActiveRequestCount implements store.CountSink.
func (c *Counts) SetActiveRequestCount(n int) {
	c.ActiveRequests = n
}
