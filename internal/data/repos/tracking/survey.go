package tracking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/mindpulse-backend/internal/data/db"
	types "github.com/yungbote/mindpulse-backend/internal/domain"
	pkgerrors "github.com/yungbote/mindpulse-backend/internal/pkg/errors"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

const maxUpdateAttempts = 3

type SurveyRepo interface {
	// Create stamps a zero Date with the current time.
	Create(ctx context.Context, tx *gorm.DB, surveys []*types.SurveyResponse) ([]*types.SurveyResponse, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.SurveyResponse, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*types.SurveyResponse, error)
	GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID string) (*types.SurveyResponse, error)
	// Update merges patch into the stored response and returns the result.
	Update(ctx context.Context, tx *gorm.DB, id int64, patch types.SurveyPatch) (*types.SurveyResponse, error)
}

type surveyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSurveyRepo(db *gorm.DB, baseLog *logger.Logger) SurveyRepo {
	repoLog := baseLog.With("repo", "SurveyRepo")
	return &surveyRepo{db: db, log: repoLog}
}

// stampDates fills zero dates with now and stores every date in UTC. sqlite keeps times as
// offset-bearing text, so mixed offsets would sort and compare as strings.
func stampDates(surveys []*types.SurveyResponse, now time.Time) {
	for _, s := range surveys {
		if s == nil {
			continue
		}
		if s.Date.IsZero() {
			s.Date = now
		}
		s.Date = s.Date.UTC()
	}
}

func (sr *surveyRepo) Create(ctx context.Context, tx *gorm.DB, surveys []*types.SurveyResponse) ([]*types.SurveyResponse, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(surveys) == 0 {
		return []*types.SurveyResponse{}, nil
	}
	stampDates(surveys, time.Now().UTC())

	if err := transaction.WithContext(ctx).Create(&surveys).Error; err != nil {
		return nil, err
	}

	return surveys, nil
}

func (sr *surveyRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.SurveyResponse, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var result types.SurveyResponse
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey %d: %w", id, pkgerrors.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (sr *surveyRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID string) ([]*types.SurveyResponse, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	results := []*types.SurveyResponse{}
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *surveyRepo) GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID string) (*types.SurveyResponse, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var result types.SurveyResponse
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("id DESC").
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("survey for user %s: %w", userID, pkgerrors.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (sr *surveyRepo) Update(ctx context.Context, tx *gorm.DB, id int64, patch types.SurveyPatch) (*types.SurveyResponse, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var out *types.SurveyResponse
	update := func(txx *gorm.DB) error {
		current, err := sr.GetByID(ctx, txx, id)
		if err != nil {
			return err
		}
		if !patch.Empty() {
			if err := txx.Model(&types.SurveyResponse{}).
				Where("id = ?", id).
				Updates(patch.Columns()).Error; err != nil {
				return err
			}
		}
		patch.Apply(current)
		out = current
		return nil
	}

	var err error
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err = transaction.WithContext(ctx).Transaction(update)
		if !db.IsRetryable(err) {
			break
		}
		sr.log.Warn("Retrying survey update", "survey_id", id, "attempt", attempt+1, "error", err)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
