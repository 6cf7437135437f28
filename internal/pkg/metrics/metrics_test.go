package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Render(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRender("US", "default", time.Millisecond, nil)
	m.ObserveRender("US", "default", time.Millisecond, nil)
	m.ObserveRender("US", "postal", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RendersTotal.WithLabelValues("US", "default", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RendersTotal.WithLabelValues("US", "postal", "error")))
}

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncFormatFallback()
	m.IncSubdivisionLookup("found")
	m.IncCacheResult("format", true)
	m.IncCacheResult("format", false)
	m.AddImported("subdivision", 5)
	m.AddImported("subdivision", 0)
	m.IncImportJob("completed")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.FormatFallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SubdivisionLookups.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheResults.WithLabelValues("format", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheResults.WithLabelValues("format", "miss")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.ImportedEntities.WithLabelValues("subdivision")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImportJobs.WithLabelValues("completed")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRender("US", "default", time.Millisecond, nil)
		m.IncFormatFallback()
		m.IncSubdivisionLookup("found")
		m.IncCacheResult("format", true)
		m.AddImported("format", 1)
		m.IncImportJob("failed")
	})
}
