package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics - метрики сервиса форматирования адресов.
// Все методы безопасны для nil-получателя: компоненты можно собирать без метрик.
type Metrics struct {
	RendersTotal       *prometheus.CounterVec
	RenderDuration     *prometheus.HistogramVec
	FormatFallbacks    prometheus.Counter
	SubdivisionLookups *prometheus.CounterVec
	CacheResults       *prometheus.CounterVec
	ImportedEntities   *prometheus.CounterVec
	ImportJobs         *prometheus.CounterVec
}

// New регистрирует метрики в переданном регистре (nil - регистр по умолчанию)
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		RendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "address_renders_total",
			Help: "Total rendered addresses by country and mode",
		}, []string{"country", "mode", "status"}),

		RenderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "address_render_duration_seconds",
			Help:    "Duration of address rendering including format and subdivision lookups",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"mode"}),

		FormatFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "address_format_fallbacks_total",
			Help: "Total format resolutions that fell back to the generic ZZ format",
		}),

		SubdivisionLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "address_subdivision_lookups_total",
			Help: "Total subdivision lookups by result",
		}, []string{"result"}), // result: "found", "not_found", "malformed"

		CacheResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "address_cache_results_total",
			Help: "Cache hits and misses by cached entity",
		}, []string{"entity", "result"}),

		ImportedEntities: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "address_imported_entities_total",
			Help: "Total imported entities by kind",
		}, []string{"kind"}), // kind: "format", "translation", "subdivision"

		ImportJobs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "address_import_jobs_total",
			Help: "Total processed import jobs by status",
		}, []string{"status"}),
	}
}

func (m *Metrics) ObserveRender(country, mode string, d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.RendersTotal.WithLabelValues(country, mode, status).Inc()
	m.RenderDuration.WithLabelValues(mode).Observe(d.Seconds())
}

func (m *Metrics) IncFormatFallback() {
	if m != nil {
		m.FormatFallbacks.Inc()
	}
}

func (m *Metrics) IncSubdivisionLookup(result string) {
	if m != nil {
		m.SubdivisionLookups.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) IncCacheResult(entity string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheResults.WithLabelValues(entity, result).Inc()
}

func (m *Metrics) AddImported(kind string, n int) {
	if m != nil && n > 0 {
		m.ImportedEntities.WithLabelValues(kind).Add(float64(n))
	}
}

func (m *Metrics) IncImportJob(status string) {
	if m != nil {
		m.ImportJobs.WithLabelValues(status).Inc()
	}
}
