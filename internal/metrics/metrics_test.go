package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSinkGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewSink(reg)

	s.SetArtworkCount(3)
	s.SetActiveRequestCount(2)
	assert.Equal(t, 3.0, testutil.ToFloat64(s.artworks))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.activeRequests))

	s.SetActiveRequestCount(0)
	assert.Equal(t, 0.0, testutil.ToFloat64(s.activeRequests))
}

func TestCounts(t *testing.T) {
	var c Counts
	c.SetArtworkCount(5)
	c.SetActiveRequestCount(1)
	assert.Equal(t, 5, c.Artworks)
	assert.Equal(t, 1, c.ActiveRequests)
}
