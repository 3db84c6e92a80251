package services

import (
	"context"
	"time"

	"github.com/yungbote/mindpulse-backend/internal/data/repos"
	types "github.com/yungbote/mindpulse-backend/internal/domain"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

type MetricService interface {
	List(ctx context.Context, userID int64) ([]*types.Metric, error)
	Latest(ctx context.Context, userID int64) (*types.Metric, error)
	Weekly(ctx context.Context, userID int64) ([]*types.Metric, error)
}

type metricService struct {
	log        *logger.Logger
	metricRepo repos.MetricRepo
	now        func() time.Time
}

func NewMetricService(log *logger.Logger, metricRepo repos.MetricRepo) MetricService {
	return &metricService{
		log:        log.With("service", "MetricService"),
		metricRepo: metricRepo,
		now:        time.Now,
	}
}

func (ms *metricService) List(ctx context.Context, userID int64) ([]*types.Metric, error) {
	return ms.metricRepo.ListByUserID(ctx, nil, userID)
}

func (ms *metricService) Latest(ctx context.Context, userID int64) (*types.Metric, error) {
	return ms.metricRepo.GetLatestByUserID(ctx, nil, userID)
}

func (ms *metricService) Weekly(ctx context.Context, userID int64) ([]*types.Metric, error) {
	return ms.metricRepo.ListWeeklyByUserID(ctx, nil, userID, ms.now())
}
