package tracking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
	pkgerrors "github.com/yungbote/mindpulse-backend/internal/pkg/errors"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

// WeeklyWindow is how far back ListWeeklyByUserID looks.
const WeeklyWindow = 7 * 24 * time.Hour

type MetricRepo interface {
	Create(ctx context.Context, tx *gorm.DB, metrics []*types.Metric) ([]*types.Metric, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID int64) ([]*types.Metric, error)
	// GetLatestByUserID returns the metric with the greatest date; ties go to the later insert.
	GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID int64) (*types.Metric, error)
	// ListWeeklyByUserID returns metrics dated within [now-7d, now].
	ListWeeklyByUserID(ctx context.Context, tx *gorm.DB, userID int64, now time.Time) ([]*types.Metric, error)
}

type metricRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMetricRepo(db *gorm.DB, baseLog *logger.Logger) MetricRepo {
	repoLog := baseLog.With("repo", "MetricRepo")
	return &metricRepo{db: db, log: repoLog}
}

// utcDates stores every date in UTC so sqlite's text timestamps order by instant.
func utcDates(metrics []*types.Metric) {
	for _, m := range metrics {
		if m != nil {
			m.Date = m.Date.UTC()
		}
	}
}

func (mr *metricRepo) Create(ctx context.Context, tx *gorm.DB, metrics []*types.Metric) ([]*types.Metric, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	if len(metrics) == 0 {
		return []*types.Metric{}, nil
	}
	utcDates(metrics)

	if err := transaction.WithContext(ctx).Create(&metrics).Error; err != nil {
		return nil, err
	}

	return metrics, nil
}

func (mr *metricRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID int64) ([]*types.Metric, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	results := []*types.Metric{}
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *metricRepo) GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID int64) (*types.Metric, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var result types.Metric
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("id DESC").
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("metrics for user %d: %w", userID, pkgerrors.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (mr *metricRepo) ListWeeklyByUserID(ctx context.Context, tx *gorm.DB, userID int64, now time.Time) ([]*types.Metric, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	results := []*types.Metric{}
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, now.Add(-WeeklyWindow).UTC(), now.UTC()).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
