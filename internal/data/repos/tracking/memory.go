package tracking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
	pkgerrors "github.com/yungbote/mindpulse-backend/internal/pkg/errors"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

// In-memory backends. Rows are kept in insertion order and handed out as copies; the tx
// argument is ignored.

type memoryMetricRepo struct {
	log    *logger.Logger
	mu     sync.RWMutex
	nextID int64
	rows   []types.Metric
}

func NewMemoryMetricRepo(baseLog *logger.Logger) MetricRepo {
	return &memoryMetricRepo{log: baseLog.With("repo", "MemoryMetricRepo"), nextID: 1}
}

func (r *memoryMetricRepo) Create(ctx context.Context, _ *gorm.DB, metrics []*types.Metric) ([]*types.Metric, error) {
	if len(metrics) == 0 {
		return []*types.Metric{}, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range metrics {
		if m == nil {
			return nil, fmt.Errorf("nil metric: %w", pkgerrors.ErrInvalidArgument)
		}
	}
	utcDates(metrics)
	for _, m := range metrics {
		m.ID = r.nextID
		r.nextID++
		r.rows = append(r.rows, *m)
	}
	return metrics, nil
}

func (r *memoryMetricRepo) filter(keep func(types.Metric) bool) []*types.Metric {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*types.Metric{}
	for _, row := range r.rows {
		if keep(row) {
			m := row
			out = append(out, &m)
		}
	}
	return out
}

func (r *memoryMetricRepo) ListByUserID(ctx context.Context, _ *gorm.DB, userID int64) ([]*types.Metric, error) {
	return r.filter(func(m types.Metric) bool { return m.UserID == userID }), nil
}

func (r *memoryMetricRepo) GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID int64) (*types.Metric, error) {
	rows, _ := r.ListByUserID(ctx, tx, userID)
	var latest *types.Metric
	for _, m := range rows {
		if latest == nil || !latest.Date.After(m.Date) {
			latest = m
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("metrics for user %d: %w", userID, pkgerrors.ErrNotFound)
	}
	return latest, nil
}

func (r *memoryMetricRepo) ListWeeklyByUserID(ctx context.Context, _ *gorm.DB, userID int64, now time.Time) ([]*types.Metric, error) {
	from := now.Add(-WeeklyWindow)
	return r.filter(func(m types.Metric) bool {
		return m.UserID == userID && !m.Date.Before(from) && !m.Date.After(now)
	}), nil
}

type memorySurveyRepo struct {
	log    *logger.Logger
	mu     sync.RWMutex
	nextID int64
	rows   []types.SurveyResponse
}

func NewMemorySurveyRepo(baseLog *logger.Logger) SurveyRepo {
	return &memorySurveyRepo{log: baseLog.With("repo", "MemorySurveyRepo"), nextID: 1}
}

func (r *memorySurveyRepo) Create(ctx context.Context, _ *gorm.DB, surveys []*types.SurveyResponse) ([]*types.SurveyResponse, error) {
	if len(surveys) == 0 {
		return []*types.SurveyResponse{}, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range surveys {
		if s == nil {
			return nil, fmt.Errorf("nil survey: %w", pkgerrors.ErrInvalidArgument)
		}
	}
	stampDates(surveys, time.Now().UTC())
	for _, s := range surveys {
		s.ID = r.nextID
		r.nextID++
		r.rows = append(r.rows, *s)
	}
	return surveys, nil
}

func (r *memorySurveyRepo) GetByID(ctx context.Context, _ *gorm.DB, id int64) (*types.SurveyResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.ID == id {
			out := row
			return &out, nil
		}
	}
	return nil, fmt.Errorf("survey %d: %w", id, pkgerrors.ErrNotFound)
}

func (r *memorySurveyRepo) ListByUserID(ctx context.Context, _ *gorm.DB, userID string) ([]*types.SurveyResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*types.SurveyResponse{}
	for _, row := range r.rows {
		if row.UserID == userID {
			s := row
			out = append(out, &s)
		}
	}
	return out, nil
}

func (r *memorySurveyRepo) GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID string) (*types.SurveyResponse, error) {
	rows, _ := r.ListByUserID(ctx, tx, userID)
	var latest *types.SurveyResponse
	for _, s := range rows {
		if latest == nil || !latest.Date.After(s.Date) {
			latest = s
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("survey for user %s: %w", userID, pkgerrors.ErrNotFound)
	}
	return latest, nil
}

func (r *memorySurveyRepo) Update(ctx context.Context, _ *gorm.DB, id int64, patch types.SurveyPatch) (*types.SurveyResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID != id {
			continue
		}
		patch.Apply(&r.rows[i])
		out := r.rows[i]
		return &out, nil
	}
	return nil, fmt.Errorf("survey %d: %w", id, pkgerrors.ErrNotFound)
}
