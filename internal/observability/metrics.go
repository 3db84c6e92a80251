package observability

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/mindpulse-backend/internal/platform/envutil"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

// Enrichment outcomes.
const (
	EnrichSkipped = "skipped"
	EnrichCached  = "cached"
	EnrichOK      = "enriched"
	EnrichFailed  = "failed"
)

type Metrics struct {
	apiRequests *CounterVec
	apiLatency  *HistogramVec
	apiInflight *Gauge

	llmRequests *CounterVec
	llmLatency  *HistogramVec
	llmTokens   *CounterVec

	enrichments   *CounterVec
	recordsLoaded *CounterVec
	recordErrors  *CounterVec

	dbStats   *GaugeVec
	redisUp   *Gauge
	redisPing *Gauge
}

var (
	initOnce sync.Once
	instance *Metrics
)

func Enabled() bool {
	return envutil.Bool("METRICS_ENABLED", false)
}

// Current returns the process-wide registry, or nil when metrics are disabled. Every method on
// a nil *Metrics is a no-op.
func Current() *Metrics {
	return instance
}

func scrapeInterval() time.Duration {
	return envutil.Seconds("METRICS_SCRAPE_INTERVAL_SECONDS", 10*time.Second)
}

func Init(log *logger.Logger) *Metrics {
	if !Enabled() {
		return nil
	}
	initOnce.Do(func() {
		instance = New()
		if log != nil {
			log.Info("metrics enabled")
		}
	})
	return instance
}

// New builds an unregistered set of metrics.
func New() *Metrics {
	return &Metrics{
		apiRequests: NewCounterVec("mp_api_requests_total", "Total API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"mp_api_request_duration_seconds",
			"API request latency in seconds by method/route/status.",
			[]string{"method", "route", "status"},
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		),
		apiInflight: NewGauge("mp_api_inflight_requests", "In-flight API requests."),
		llmRequests: NewCounterVec("mp_llm_requests_total", "Language-model requests by provider/model/status.", []string{"provider", "model", "status"}),
		llmLatency: NewHistogramVec(
			"mp_llm_request_duration_seconds",
			"Language-model request latency in seconds.",
			[]string{"provider", "model", "status"},
			[]float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		),
		llmTokens:     NewCounterVec("mp_llm_tokens_total", "Language-model tokens by provider/model/kind.", []string{"provider", "model", "kind"}),
		enrichments:   NewCounterVec("mp_enrichment_total", "Enrichment attempts by outcome.", []string{"outcome"}),
		recordsLoaded: NewCounterVec("mp_records_loaded_total", "Daily records loaded by source.", []string{"source"}),
		recordErrors:  NewCounterVec("mp_record_errors_total", "Record load failures by source/issue.", []string{"source", "issue"}),
		dbStats:       NewGaugeVec("mp_db_stats", "Database pool stats.", []string{"stat"}),
		redisUp:       NewGauge("mp_redis_up", "Redis reachability (1 up, 0 down)."),
		redisPing:     NewGauge("mp_redis_ping_seconds", "Redis ping latency in seconds."),
	}
}

func (m *Metrics) Handler() http.Handler {
	return http.HandlerFunc(m.WriteHTTP)
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

func (m *Metrics) collectors() []collector {
	return []collector{
		m.apiRequests, m.apiLatency, m.apiInflight,
		m.llmRequests, m.llmLatency, m.llmTokens,
		m.enrichments, m.recordsLoaded, m.recordErrors,
		m.dbStats, m.redisUp, m.redisPing,
	}
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	method = orDefault(method, "UNKNOWN")
	route = orDefault(route, "unknown")
	status = orDefault(status, "0")
	m.apiRequests.Inc(method, route, status)
	m.apiLatency.Observe(dur.Seconds(), method, route, status)
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

func (m *Metrics) ObserveLLMRequest(provider, model, status string, dur time.Duration, inputTokens, outputTokens int) {
	if m == nil {
		return
	}
	provider = orDefault(provider, "unknown")
	model = orDefault(model, "unknown")
	status = orDefault(status, "0")
	m.llmRequests.Inc(provider, model, status)
	if dur > 0 {
		m.llmLatency.Observe(dur.Seconds(), provider, model, status)
	}
	if inputTokens > 0 {
		m.llmTokens.Add(float64(inputTokens), provider, model, "input")
	}
	if outputTokens > 0 {
		m.llmTokens.Add(float64(outputTokens), provider, model, "output")
	}
}

func (m *Metrics) IncEnrichment(outcome string) {
	if m == nil {
		return
	}
	m.enrichments.Inc(orDefault(outcome, "unknown"))
}

func (m *Metrics) AddRecordsLoaded(source string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.recordsLoaded.Add(float64(n), orDefault(source, "unknown"))
}

func (m *Metrics) IncRecordError(source, issue string) {
	if m == nil {
		return
	}
	m.recordErrors.Inc(orDefault(source, "unknown"), orDefault(issue, "unknown"))
}

// StartDBCollector samples the gorm connection pool until ctx ends.
func (m *Metrics) StartDBCollector(ctx context.Context, log *logger.Logger, db *gorm.DB) {
	if m == nil || db == nil {
		return
	}
	interval := scrapeInterval()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					if log != nil {
						log.Warn("metrics: db stats unavailable", "error", err)
					}
					continue
				}
				stats := sqlDB.Stats()
				m.dbStats.Set(float64(stats.OpenConnections), "open_connections")
				m.dbStats.Set(float64(stats.InUse), "in_use")
				m.dbStats.Set(float64(stats.Idle), "idle")
				m.dbStats.Set(float64(stats.WaitCount), "wait_count")
				m.dbStats.Set(stats.WaitDuration.Seconds(), "wait_duration_seconds")
			}
		}
	}()
}

// StartRedisCollector pings rdb until ctx ends. The caller owns rdb.
func (m *Metrics) StartRedisCollector(ctx context.Context, log *logger.Logger, rdb redis.UniversalClient) {
	if m == nil || rdb == nil {
		return
	}
	interval := scrapeInterval()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
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

func orDefault(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}
