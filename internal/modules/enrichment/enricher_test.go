package enrichment

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisclient "github.com/yungbote/mindpulse-backend/internal/clients/redis"
	"github.com/yungbote/mindpulse-backend/internal/data/repos"
	types "github.com/yungbote/mindpulse-backend/internal/domain"
	wbdomain "github.com/yungbote/mindpulse-backend/internal/domain/wellbeing"
	"github.com/yungbote/mindpulse-backend/internal/modules/wellbeing"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

type fakeGenerator struct {
	calls  atomic.Int32
	out    map[string]any
	err    error
	panic  bool
	delay  time.Duration
	system string
	user   string
	mu     sync.Mutex
}

func (g *fakeGenerator) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) (map[string]any, error) {
	g.calls.Add(1)
	g.mu.Lock()
	g.system, g.user = system, user
	g.mu.Unlock()
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	if g.panic {
		panic("boom")
	}
	return g.out, g.err
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return nil, redisclient.ErrMiss
	}
	return b, nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = map[string][]byte{}
	}
	c.data[key] = value
	return nil
}

func sampleData() types.ProcessedUserData {
	p := wellbeing.NewProcessor(nil, logger.NewNop())
	return p.Process("u00", []types.DailyRecord{
		{Date: "2023-05-09", UserID: "u00", StressLevel: 1, ScreenTimeTotal: 590.7, OnFoot: 0.08, OnBike: 0.03, Running: 0.04, ConversationCount: 21},
		{Date: "2023-05-10", UserID: "u00", StressLevel: 2, ScreenTimeTotal: 600, OnFoot: 0.09, OnBike: 0.02, Running: 0.03, ConversationCount: 23},
	})
}

func successPayload() map[string]any {
	return map[string]any{
		"enhancedInsights": []any{
			map[string]any{"type": "pattern", "description": "Evenings are calmer", "confidence": 0.7, "relatedMetrics": []any{"stress_level"}},
		},
		"personalizedRecommendations": []any{
			map[string]any{"category": "sleep", "description": "Wind down earlier", "expectedImpact": 0.6, "confidence": 0.8},
		},
	}
}

func TestEnrichWithoutGeneratorReturnsInput(t *testing.T) {
	e := NewEnricher(logger.NewNop(), Options{})
	in := sampleData()
	out := e.Enrich(context.Background(), in)
	assert.Equal(t, in, out)
	assert.False(t, e.Enabled())
}

func TestEnrichRemoteFailureReturnsInput(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("status 500")}
	e := NewEnricher(logger.NewNop(), Options{Generator: gen, Provider: "fake"})
	in := sampleData()
	assert.Equal(t, in, e.Enrich(context.Background(), in))
	assert.EqualValues(t, 1, gen.calls.Load())
}

func TestEnrichBadPayloadReturnsInput(t *testing.T) {
	gen := &fakeGenerator{out: map[string]any{"enhancedInsights": "not a list"}}
	e := NewEnricher(logger.NewNop(), Options{Generator: gen})
	in := sampleData()
	assert.Equal(t, in, e.Enrich(context.Background(), in))
}

func TestEnrichRecoversGeneratorPanic(t *testing.T) {
	gen := &fakeGenerator{panic: true}
	e := NewEnricher(logger.NewNop(), Options{Generator: gen})
	in := sampleData()
	assert.Equal(t, in, e.Enrich(context.Background(), in))
}

func TestEnrichAppendsWithoutAliasing(t *testing.T) {
	gen := &fakeGenerator{out: successPayload()}
	e := NewEnricher(logger.NewNop(), Options{Generator: gen, Provider: "fake", Model: "m"})
	in := sampleData()
	nInsights, nRecs := len(in.Insights), len(in.Recommendations)

	out := e.Enrich(context.Background(), in)
	require.Len(t, out.Insights, nInsights+1)
	require.Len(t, out.Recommendations, nRecs+1)
	assert.Equal(t, in.Insights, out.Insights[:nInsights])
	assert.Equal(t, "Evenings are calmer", out.Insights[nInsights].Description)
	assert.Equal(t, wbdomain.RecommendationCategory("sleep"), out.Recommendations[nRecs].Category)
	assert.Equal(t, in.Correlations, out.Correlations)
	assert.Equal(t, in.Records, out.Records)
	assert.Len(t, in.Insights, nInsights)

	assert.Equal(t, SystemPrompt, gen.system)
	assert.Contains(t, gen.user, "User ID: u00")
}

func TestEnrichMissingArraysAppendNothing(t *testing.T) {
	gen := &fakeGenerator{out: map[string]any{}}
	e := NewEnricher(logger.NewNop(), Options{Generator: gen})
	in := sampleData()
	out := e.Enrich(context.Background(), in)
	assert.Equal(t, in.Insights, out.Insights)
	assert.Equal(t, in.Recommendations, out.Recommendations)
}

func TestEnrichUsesCacheAndLogsCalls(t *testing.T) {
	gen := &fakeGenerator{out: successPayload()}
	logs := repos.NewMemorySet(logger.NewNop()).AICallLogs
	e := NewEnricher(logger.NewNop(), Options{Generator: gen, Provider: "fake", Model: "m", Cache: &memCache{}, CallLogs: logs})
	in := sampleData()

	first := e.Enrich(context.Background(), in)
	second := e.Enrich(context.Background(), in)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, gen.calls.Load())

	rows, err := logs.ListByUserID(context.Background(), nil, "u00", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ok", rows[0].Status)
	assert.Equal(t, "fake", rows[0].Provider)
	assert.Contains(t, string(rows[0].Request), "User ID: u00")
}

func TestEnrichCollapsesConcurrentCalls(t *testing.T) {
	gen := &fakeGenerator{out: successPayload(), delay: 50 * time.Millisecond}
	e := NewEnricher(logger.NewNop(), Options{Generator: gen})
	in := sampleData()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := e.Enrich(context.Background(), in)
			assert.Len(t, out.Insights, len(in.Insights)+1)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, gen.calls.Load(), int32(5))
	assert.GreaterOrEqual(t, gen.calls.Load(), int32(1))
}

func TestEnrichTimeoutReturnsInput(t *testing.T) {
	gen := &blockingGenerator{}
	e := NewEnricher(logger.NewNop(), Options{Generator: gen, Timeout: 20 * time.Millisecond})
	in := sampleData()
	assert.Equal(t, in, e.Enrich(context.Background(), in))
}

type blockingGenerator struct{}

func (blockingGenerator) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) (map[string]any, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
