package observability

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/neuroadapt-backend/internal/platform/envutil"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	presetDecisions *prometheus.CounterVec
	classifyLatency prometheus.Histogram
	decisionMargin  prometheus.Histogram
	evidenceSkipped *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec

	redisUp   prometheus.Gauge
	redisPing prometheus.Gauge
}

var (
	initOnce sync.Once
	instance *Metrics
)

func Enabled() bool {
	return envutil.Bool("METRICS_ENABLED", false)
}

func Current() *Metrics {
	return instance
}

// Init builds the process-wide metrics set when METRICS_ENABLED is on.
// A nil *Metrics is valid everywhere and records nothing.
func Init(log *logger.Logger) *Metrics {
	if !Enabled() {
		return nil
	}
	initOnce.Do(func() {
		instance = NewMetrics(prometheus.NewRegistry())
		if log != nil {
			log.Info("metrics enabled")
		}
	})
	return instance
}

// NewMetrics registers every collector on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "na_api_requests_total",
			Help: "Total API requests by method/route/status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "na_api_request_duration_seconds",
			Help:    "API request latency in seconds by method/route/status.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "route", "status"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "na_api_inflight_requests",
			Help: "In-flight API requests.",
		}),
		presetDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "na_preset_decisions_total",
			Help: "Preset decisions by chosen preset and trigger.",
		}, []string{"preset", "trigger"}),
		classifyLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "na_preset_classify_duration_seconds",
			Help:    "Time spent loading inputs and classifying one learner.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		decisionMargin: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "na_preset_decision_margin",
			Help:    "Score lead of the chosen preset over the runner-up.",
			Buckets: []float64{0, 1, 2.5, 5, 10, 20, 40, 80},
		}),
		evidenceSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "na_preset_evidence_skipped_total",
			Help: "Evidence items skipped as malformed or unknown, by analyzer.",
		}, []string{"analyzer"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "na_preset_cache_lookups_total",
			Help: "Current-preset cache lookups by result (hit/miss/error).",
		}, []string{"result"}),
		redisUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "na_redis_up",
			Help: "Redis reachability (1 up, 0 down).",
		}),
		redisPing: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "na_redis_ping_seconds",
			Help: "Last Redis ping latency in seconds.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.presetDecisions,
		m.classifyLatency,
		m.decisionMargin,
		m.evidenceSkipped,
		m.cacheLookups,
		m.redisUp,
		m.redisPing,
	)
	return m
}

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveAPI(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	s := strconv.Itoa(status)
	m.apiRequests.WithLabelValues(method, route, s).Inc()
	m.apiLatency.WithLabelValues(method, route, s).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

// ObservePresetDecision records one classification outcome.
func (m *Metrics) ObservePresetDecision(preset, trigger string, margin float64, dur time.Duration) {
	if m == nil {
		return
	}
	m.presetDecisions.WithLabelValues(preset, trigger).Inc()
	m.decisionMargin.Observe(margin)
	m.classifyLatency.Observe(dur.Seconds())
}

func (m *Metrics) IncEvidenceSkipped(analyzer string) {
	if m == nil {
		return
	}
	if analyzer == "" {
		analyzer = "unknown"
	}
	m.evidenceSkipped.WithLabelValues(analyzer).Inc()
}

func (m *Metrics) IncCacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// StartPostgresCollector exports connection-pool stats for db.
func (m *Metrics) StartPostgresCollector(log *logger.Logger, db *gorm.DB) {
	if m == nil || db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		if log != nil {
			log.Warn("metrics: db stats unavailable", "error", err)
		}
		return
	}
	if err := m.registry.Register(collectors.NewDBStatsCollector(sqlDB, "neuroadapt")); err != nil && log != nil {
		log.Warn("metrics: db stats collector not registered", "error", err)
	}
}

func (m *Metrics) StartRedisCollector(ctx context.Context, log *logger.Logger, addr string) {
	if m == nil {
		return
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return
	}
	interval := time.Duration(envutil.Int("METRICS_SCRAPE_INTERVAL_SECONDS", 15)) * time.Second
	if interval <= 0 {
		interval = 15 * time.Second
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				_ = rdb.Close()
				return
			case <-ticker.C:
				start := time.Now()
				if err := rdb.Ping(ctx).Err(); err != nil {
					m.redisUp.Set(0)
					if log != nil {
						log.Warn("metrics: redis ping failed", "error", err)
					}
					continue
				}
				m.redisUp.Set(1)
				m.redisPing.Set(time.Since(start).Seconds())
			}
		}
	}()
}
