package domain

import (
	"github.com/yungbote/mindpulse-backend/internal/domain/ai"
	"github.com/yungbote/mindpulse-backend/internal/domain/tracking"
	"github.com/yungbote/mindpulse-backend/internal/domain/user"
	"github.com/yungbote/mindpulse-backend/internal/domain/wellbeing"
)

type User = user.User

type Metric = tracking.Metric
type SurveyResponse = tracking.SurveyResponse
type SurveyPatch = tracking.SurveyPatch

type AICallLog = ai.AICallLog

type DailyRecord = wellbeing.DailyRecord
type UserInsight = wellbeing.UserInsight
type Correlation = wellbeing.Correlation
type StressFactor = wellbeing.StressFactor
type Recommendation = wellbeing.Recommendation
type ProcessedUserData = wellbeing.ProcessedUserData
type UserMetrics = wellbeing.UserMetrics
type GoalMetric = wellbeing.GoalMetric
type AdvancedMetrics = wellbeing.AdvancedMetrics

// Persisted lists every gorm model in migration order.
func Persisted() []any {
	return []any{
		&User{},
		&Metric{},
		&SurveyResponse{},
		&AICallLog{},
	}
}
