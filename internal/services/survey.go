package services

import (
	"context"
	"strconv"

	"github.com/yungbote/mindpulse-backend/internal/data/repos"
	types "github.com/yungbote/mindpulse-backend/internal/domain"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

// SurveyInput is a validated check-in submission.
type SurveyInput struct {
	UserID      string
	Mood        string
	StressLevel float64
	Notes       *string
}

type SurveyService interface {
	Latest(ctx context.Context, userID int64) (*types.SurveyResponse, error)
	Create(ctx context.Context, in SurveyInput) (*types.SurveyResponse, error)
	Update(ctx context.Context, id int64, patch types.SurveyPatch) (*types.SurveyResponse, error)
}

type surveyService struct {
	log        *logger.Logger
	surveyRepo repos.SurveyRepo
}

func NewSurveyService(log *logger.Logger, surveyRepo repos.SurveyRepo) SurveyService {
	return &surveyService{log: log.With("service", "SurveyService"), surveyRepo: surveyRepo}
}

// Latest matches surveys whose string userId equals the decimal form of userID.
func (ss *surveyService) Latest(ctx context.Context, userID int64) (*types.SurveyResponse, error) {
	return ss.surveyRepo.GetLatestByUserID(ctx, nil, strconv.FormatInt(userID, 10))
}

func (ss *surveyService) Create(ctx context.Context, in SurveyInput) (*types.SurveyResponse, error) {
	row := &types.SurveyResponse{
		UserID:      in.UserID,
		Mood:        in.Mood,
		StressLevel: in.StressLevel,
		Notes:       in.Notes,
		Completed:   true,
	}
	created, err := ss.surveyRepo.Create(ctx, nil, []*types.SurveyResponse{row})
	if err != nil {
		ss.log.Error("Failed to store survey response", "user_id", in.UserID, "error", err)
		return nil, err
	}
	return created[0], nil
}

func (ss *surveyService) Update(ctx context.Context, id int64, patch types.SurveyPatch) (*types.SurveyResponse, error) {
	return ss.surveyRepo.Update(ctx, nil, id, patch)
}
