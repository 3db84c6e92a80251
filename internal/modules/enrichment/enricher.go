package enrichment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"

	redisclient "github.com/yungbote/mindpulse-backend/internal/clients/redis"
	"github.com/yungbote/mindpulse-backend/internal/data/repos"
	types "github.com/yungbote/mindpulse-backend/internal/domain"
	"github.com/yungbote/mindpulse-backend/internal/observability"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

const DefaultTimeout = 60 * time.Second

// Generator is satisfied by both the openai and anthropic platform clients.
type Generator interface {
	GenerateJSON(ctx context.Context, system string, user string, schemaName string, schema map[string]any) (map[string]any, error)
}

// ResponseCache is the subset of the redis cache the enricher needs.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type Options struct {
	Generator Generator
	Provider  string
	Model     string
	Timeout   time.Duration
	Cache     ResponseCache
	CallLogs  repos.AICallLogRepo
}

// Enricher adds model-generated insights and recommendations to a ProcessedUserData.
// A nil Generator disables it.
type Enricher struct {
	log      *logger.Logger
	gen      Generator
	provider string
	model    string
	timeout  time.Duration
	cache    ResponseCache
	callLogs repos.AICallLogRepo
	group    singleflight.Group
}

func NewEnricher(baseLog *logger.Logger, opts Options) *Enricher {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Enricher{
		log:      baseLog.With("service", "Enricher", "provider", opts.Provider),
		gen:      opts.Generator,
		provider: opts.Provider,
		model:    opts.Model,
		timeout:  opts.Timeout,
		cache:    opts.Cache,
		callLogs: opts.CallLogs,
	}
}

func (e *Enricher) Enabled() bool { return e != nil && e.gen != nil }

// Enrich never fails: on any problem it logs and returns data unchanged.
func (e *Enricher) Enrich(ctx context.Context, data types.ProcessedUserData) (out types.ProcessedUserData) {
	out = data
	if !e.Enabled() {
		if e != nil {
			e.log.Warn("No language model credential configured; skipping enrichment", "user_id", data.UserID)
		}
		observability.Current().IncEnrichment(observability.EnrichSkipped)
		return data
	}
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("Enrichment panicked; returning original insights", "user_id", data.UserID, "panic", fmt.Sprint(r))
			observability.Current().IncEnrichment(observability.EnrichFailed)
			out = data
		}
	}()

	summary := BuildSummary(data)
	key := cacheKey(e.provider, e.model, summary)

	if resp, ok := e.cached(ctx, key); ok {
		observability.Current().IncEnrichment(observability.EnrichCached)
		return merge(data, resp)
	}

	ch := e.group.DoChan(key, func() (any, error) {
		return e.call(ctx, data.UserID, summary, key)
	})
	select {
	case <-ctx.Done():
		e.log.Warn("Enrichment abandoned; request ended", "user_id", data.UserID, "error", ctx.Err())
		observability.Current().IncEnrichment(observability.EnrichFailed)
		return data
	case res := <-ch:
		if res.Err != nil {
			e.log.Warn("Enrichment failed; returning original insights", "user_id", data.UserID, "error", res.Err)
			observability.Current().IncEnrichment(observability.EnrichFailed)
			return data
		}
		observability.Current().IncEnrichment(observability.EnrichOK)
		return merge(data, res.Val.(Response))
	}
}

// call performs the single remote attempt. It outlives the request that started it so
// that collapsed callers still get a result; the timeout bounds it instead.
func (e *Enricher) call(ctx context.Context, userID, summary, key string) (resp Response, err error) {
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
	defer cancel()
	callCtx, span := observability.StartSpan(callCtx, "enrichment.generate",
		attribute.String("llm.provider", e.provider),
		attribute.String("llm.model", e.model),
	)
	start := time.Now()
	var raw map[string]any
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generator panic: %v", r)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		e.record(callCtx, userID, summary, raw, time.Since(start), err)
	}()

	raw, err = e.gen.GenerateJSON(callCtx, SystemPrompt, UserPrompt(summary), SchemaName, ResponseSchema())
	if err != nil {
		return resp, err
	}
	resp, err = decodeResponse(raw)
	if err != nil {
		return resp, err
	}
	e.store(callCtx, key, resp)
	return resp, nil
}

func cacheKey(provider, model, summary string) string {
	sum := sha256.Sum256([]byte(provider + "\x00" + model + "\x00" + summary))
	return "enrichment:" + hex.EncodeToString(sum[:])
}

func (e *Enricher) cached(ctx context.Context, key string) (Response, bool) {
	var resp Response
	if e.cache == nil {
		return resp, false
	}
	b, err := e.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redisclient.ErrMiss) {
			e.log.Warn("Enrichment cache read failed", "error", err)
		}
		return resp, false
	}
	if err := json.Unmarshal(b, &resp); err != nil {
		e.log.Warn("Enrichment cache entry unreadable", "error", err)
		return resp, false
	}
	return resp, true
}

func (e *Enricher) store(ctx context.Context, key string, resp Response) {
	if e.cache == nil {
		return
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := e.cache.Set(ctx, key, b); err != nil {
		e.log.Warn("Enrichment cache write failed", "error", err)
	}
}

func (e *Enricher) record(ctx context.Context, userID, summary string, raw map[string]any, dur time.Duration, callErr error) {
	if e.callLogs == nil {
		return
	}
	row := &types.AICallLog{
		UserID:    userID,
		Provider:  e.provider,
		Model:     e.model,
		Status:    "ok",
		LatencyMs: dur.Milliseconds(),
	}
	if callErr != nil {
		row.Status = "error"
		row.Error = callErr.Error()
	}
	row.Request, _ = json.Marshal(map[string]string{"summary": summary})
	row.Response, _ = json.Marshal(raw)
	if _, err := e.callLogs.Create(context.WithoutCancel(ctx), nil, []*types.AICallLog{row}); err != nil {
		e.log.Warn("Failed to persist AI call log", "error", err)
	}
}
