package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/mindpulse-backend/internal/data/repos/ai"
	"github.com/yungbote/mindpulse-backend/internal/data/repos/tracking"
	"github.com/yungbote/mindpulse-backend/internal/data/repos/user"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo

type MetricRepo = tracking.MetricRepo
type SurveyRepo = tracking.SurveyRepo

type AICallLogRepo = ai.AICallLogRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewMetricRepo(db *gorm.DB, baseLog *logger.Logger) MetricRepo {
	return tracking.NewMetricRepo(db, baseLog)
}
func NewSurveyRepo(db *gorm.DB, baseLog *logger.Logger) SurveyRepo {
	return tracking.NewSurveyRepo(db, baseLog)
}
func NewAICallLogRepo(db *gorm.DB, baseLog *logger.Logger) AICallLogRepo {
	return ai.NewAICallLogRepo(db, baseLog)
}

// Set is every repository the service needs, from one backend.
type Set struct {
	Users      UserRepo
	Metrics    MetricRepo
	Surveys    SurveyRepo
	AICallLogs AICallLogRepo
}

func NewGormSet(db *gorm.DB, baseLog *logger.Logger) Set {
	return Set{
		Users:      NewUserRepo(db, baseLog),
		Metrics:    NewMetricRepo(db, baseLog),
		Surveys:    NewSurveyRepo(db, baseLog),
		AICallLogs: NewAICallLogRepo(db, baseLog),
	}
}

func NewMemorySet(baseLog *logger.Logger) Set {
	return Set{
		Users:      user.NewMemoryUserRepo(baseLog),
		Metrics:    tracking.NewMemoryMetricRepo(baseLog),
		Surveys:    tracking.NewMemorySurveyRepo(baseLog),
		AICallLogs: ai.NewMemoryAICallLogRepo(baseLog, 0),
	}
}
