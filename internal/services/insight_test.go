package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
	"github.com/yungbote/mindpulse-backend/internal/modules/enrichment"
	"github.com/yungbote/mindpulse-backend/internal/modules/wellbeing"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

type fakeLoader struct {
	recs map[string][]types.DailyRecord
	err  error
}

func (f fakeLoader) LoadUser(ctx context.Context, userID string) ([]types.DailyRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.recs[userID], nil
}

type staticGenerator struct{ out map[string]any }

func (g staticGenerator) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) (map[string]any, error) {
	return g.out, nil
}

func newInsightService(loader RecordLoader, gen enrichment.Generator) InsightService {
	log := logger.NewNop()
	return NewInsightService(log, loader,
		wellbeing.NewProcessor(wellbeing.DefaultCatalog(), log),
		enrichment.NewEnricher(log, enrichment.Options{Generator: gen}),
	)
}

func sampleRecords() map[string][]types.DailyRecord {
	return map[string][]types.DailyRecord{
		"u01": {
			{Date: "2023-05-01", UserID: "u01", StressLevel: 2, ScreenTimeTotal: 300, OnFoot: 0.05},
			{Date: "2023-05-02", UserID: "u01", StressLevel: 3, ScreenTimeTotal: 400, OnFoot: 0.02},
		},
	}
}

func TestInsightServiceInsightsWithoutGenerator(t *testing.T) {
	svc := newInsightService(fakeLoader{recs: sampleRecords()}, nil)

	out, err := svc.Insights(context.Background(), "u01")
	require.NoError(t, err)
	assert.Equal(t, "u01", out.UserID)
	assert.Len(t, out.Records, 2)
	assert.Len(t, out.Insights, 4)

	empty, err := svc.Insights(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty.Records)
	assert.Len(t, empty.Insights, 2)
}

func TestInsightServiceLoaderFailure(t *testing.T) {
	svc := newInsightService(fakeLoader{err: errors.New("disk gone")}, nil)

	_, err := svc.Insights(context.Background(), "u01")
	assert.Error(t, err)
	_, err = svc.Metrics(context.Background(), "u01")
	assert.Error(t, err)
	_, err = svc.Recommendations(context.Background(), "u01")
	assert.Error(t, err)
}

func TestInsightServiceMetrics(t *testing.T) {
	svc := newInsightService(fakeLoader{recs: sampleRecords()}, nil)

	m, err := svc.Metrics(context.Background(), "u01")
	require.NoError(t, err)
	assert.InDelta(t, 40, m.MentalScore, 1e-9)
	assert.Equal(t, []float64{2, 3}, m.DayHistory)

	_, err = svc.Metrics(context.Background(), "nobody")
	assert.ErrorIs(t, err, wellbeing.ErrNoRecords)
}

func TestInsightServiceRecommendationsEnriched(t *testing.T) {
	gen := staticGenerator{out: map[string]any{
		"enhancedInsights": []any{
			map[string]any{"type": "pattern", "description": "Evenings are calmer", "confidence": 0.7, "relatedMetrics": []any{"stress_level"}},
		},
		"personalizedRecommendations": []any{
			map[string]any{"category": "sleep", "description": "Wind down earlier", "expectedImpact": 0.5, "confidence": 0.6},
		},
	}}
	svc := newInsightService(fakeLoader{recs: sampleRecords()}, gen)

	view, err := svc.Recommendations(context.Background(), "u01")
	require.NoError(t, err)
	assert.Equal(t, "u01", view.UserID)
	require.Len(t, view.Insights, 5)
	require.Len(t, view.Recommendations, 5)
	assert.Equal(t, "Evenings are calmer", view.Insights[4].Description)
	assert.Equal(t, "Wind down earlier", view.Recommendations[4].Description)
}

func TestInsightServiceAdvancedMetrics(t *testing.T) {
	svc := newInsightService(fakeLoader{}, nil)
	a := svc.AdvancedMetrics(context.Background(), 42)
	assert.Equal(t, wellbeing.AdvancedMetricsSample(), a)
}
