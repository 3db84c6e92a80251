package services

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/yungbote/mindpulse-backend/internal/data/records"
	types "github.com/yungbote/mindpulse-backend/internal/domain"
	"github.com/yungbote/mindpulse-backend/internal/modules/enrichment"
	"github.com/yungbote/mindpulse-backend/internal/modules/wellbeing"
	"github.com/yungbote/mindpulse-backend/internal/observability"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

// RecordLoader returns one user's daily records in file order.
type RecordLoader interface {
	LoadUser(ctx context.Context, userID string) ([]types.DailyRecord, error)
}

var _ RecordLoader = (*records.Loader)(nil)

type RecommendationsView struct {
	UserID          string                 `json:"userId"`
	Recommendations []types.Recommendation `json:"recommendations"`
	Insights        []types.UserInsight    `json:"insights"`
}

type InsightService interface {
	// Insights loads, processes and (when configured) enriches the user's data.
	Insights(ctx context.Context, userID string) (types.ProcessedUserData, error)
	// Metrics fails with wellbeing.ErrNoRecords when the user has no rows.
	Metrics(ctx context.Context, userID string) (types.UserMetrics, error)
	Recommendations(ctx context.Context, userID string) (RecommendationsView, error)
	AdvancedMetrics(ctx context.Context, userID int64) types.AdvancedMetrics
}

type insightService struct {
	log       *logger.Logger
	loader    RecordLoader
	processor *wellbeing.Processor
	enricher  *enrichment.Enricher
}

func NewInsightService(log *logger.Logger, loader RecordLoader, processor *wellbeing.Processor, enricher *enrichment.Enricher) InsightService {
	return &insightService{
		log:       log.With("service", "InsightService"),
		loader:    loader,
		processor: processor,
		enricher:  enricher,
	}
}

func (is *insightService) process(ctx context.Context, userID string) (types.ProcessedUserData, error) {
	ctx, span := observability.StartSpan(ctx, "insights.process", attribute.String("insights.user", userID))
	defer span.End()
	recs, err := is.loader.LoadUser(ctx, userID)
	if err != nil {
		is.log.Error("Failed to load records", "user_id", userID, "error", err)
		return types.ProcessedUserData{}, fmt.Errorf("load records: %w", err)
	}
	return is.processor.Process(userID, recs), nil
}

func (is *insightService) enriched(ctx context.Context, userID string) (types.ProcessedUserData, error) {
	data, err := is.process(ctx, userID)
	if err != nil {
		return data, err
	}
	return is.enricher.Enrich(ctx, data), nil
}

func (is *insightService) Insights(ctx context.Context, userID string) (types.ProcessedUserData, error) {
	return is.enriched(ctx, userID)
}

func (is *insightService) Metrics(ctx context.Context, userID string) (types.UserMetrics, error) {
	data, err := is.process(ctx, userID)
	if err != nil {
		return types.UserMetrics{}, err
	}
	return wellbeing.BuildMetrics(userID, data.Records)
}

func (is *insightService) Recommendations(ctx context.Context, userID string) (RecommendationsView, error) {
	data, err := is.enriched(ctx, userID)
	if err != nil {
		return RecommendationsView{}, err
	}
	return RecommendationsView{
		UserID:          userID,
		Recommendations: data.Recommendations,
		Insights:        data.Insights,
	}, nil
}

func (is *insightService) AdvancedMetrics(ctx context.Context, userID int64) types.AdvancedMetrics {
	return wellbeing.AdvancedMetricsSample()
}
