package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// GatewayMetrics records request and upstream metadata for the gateway.
type GatewayMetrics struct {
	requests         *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec
}

// NewGatewayMetrics registers the gateway metrics on the provided registerer.
func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	if reg == nil {
		return &GatewayMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_requests_total",
		Help: "Requests served, labeled by entity and status.",
	}, []string{"entity", "status"})
	upstreamDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "Duration of backend requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"entity"})
	cacheHits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "page_cache_hits_total",
		Help: "Canonical page cache hits.",
	}, []string{"entity"})
	cacheMisses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "page_cache_misses_total",
		Help: "Canonical page cache misses.",
	}, []string{"entity"})
	reg.MustRegister(requests, upstreamDuration, cacheHits, cacheMisses)
	return &GatewayMetrics{
		requests:         requests,
		upstreamDuration: upstreamDuration,
		cacheHits:        cacheHits,
		cacheMisses:      cacheMisses,
	}
}

// IncRequest counts one served request.
func (g *GatewayMetrics) IncRequest(entity string, status int) {
	if g == nil || g.requests == nil {
		return
	}
	g.requests.WithLabelValues(normalizeLabel(entity), strconv.Itoa(status)).Inc()
}

// ObserveUpstream records the duration of one backend round trip.
func (g *GatewayMetrics) ObserveUpstream(entity string, duration time.Duration) {
	if g == nil || g.upstreamDuration == nil {
		return
	}
	g.upstreamDuration.WithLabelValues(normalizeLabel(entity)).Observe(duration.Seconds())
}

// IncCacheHit counts one page-cache hit.
func (g *GatewayMetrics) IncCacheHit(entity string) {
	if g == nil || g.cacheHits == nil {
		return
	}
	g.cacheHits.WithLabelValues(normalizeLabel(entity)).Inc()
}

// IncCacheMiss counts one page-cache miss.
func (g *GatewayMetrics) IncCacheMiss(entity string) {
	if g == nil || g.cacheMisses == nil {
		return
	}
	g.cacheMisses.WithLabelValues(normalizeLabel(entity)).Inc()
}

func normalizeLabel(entity string) string {
	if entity == "" {
		return "unknown"
	}
	return entity
}
