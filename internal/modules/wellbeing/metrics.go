package wellbeing

import (
	"errors"
	"fmt"
	"math"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
	"github.com/yungbote/mindpulse-backend/internal/domain/wellbeing"
)

var ErrNoRecords = errors.New("no records for user")

const (
	minutesPerDay = 1440

	ActivityGoalMinutes   = 30
	SleepGoalMinutes      = 480
	ScreenTimeGoalMinutes = 180
	AmbientNoiseGoalDB    = 60
	// No noise sensor feeds the dataset; the dashboard shows a fixed reading.
	AmbientNoiseReadingDB = 45

	HistoryDays = 14
)

// BuildMetrics projects the latest record and the trailing stress history into the dashboard
// view. Callers must answer "not found" themselves when the user has no records; passing an
// empty slice returns ErrNoRecords.
func BuildMetrics(userID string, records []types.DailyRecord) (types.UserMetrics, error) {
	if len(records) == 0 {
		return types.UserMetrics{}, fmt.Errorf("user %s: %w", userID, ErrNoRecords)
	}
	latest := records[len(records)-1]

	activityRaw := PhysicalActivityFraction(latest) * minutesPerDay
	activity := Classify(activityRaw, ActivityGoalMinutes, false)

	sleepCurrent := SleepGoalMinutes - RoundHalfUp(latest.ScreenTimeTotal*0.2)
	sleep := Classify(sleepCurrent, SleepGoalMinutes, false)

	// Screen time and noise pass (goal, current): the reversed ratio ends up current/goal.
	screenCurrent := RoundHalfUp(latest.ScreenTimeTotal)
	screen := Classify(ScreenTimeGoalMinutes, screenCurrent, true)
	noise := Classify(AmbientNoiseGoalDB, AmbientNoiseReadingDB, true)

	return types.UserMetrics{
		MentalScore: math.Max(100-latest.StressLevel*20, 0),
		PhysicalActivity: types.GoalMetric{
			Current:  RoundHalfUp(activityRaw),
			Goal:     ActivityGoalMinutes,
			Status:   activity.Status,
			Progress: activity.ProgressPercent,
		},
		Sleep: types.GoalMetric{
			Current:  sleepCurrent,
			Goal:     SleepGoalMinutes,
			Status:   sleep.Status,
			Progress: sleep.ProgressPercent,
		},
		ScreenTime: types.GoalMetric{
			Current:  screenCurrent,
			Goal:     ScreenTimeGoalMinutes,
			Status:   screen.Status,
			Progress: screen.ProgressPercent,
		},
		AmbientNoise: types.GoalMetric{
			Current:  AmbientNoiseReadingDB,
			Goal:     AmbientNoiseGoalDB,
			Status:   noise.Status,
			Progress: noise.ProgressPercent,
		},
		DarkTime: wellbeing.DarkTime{
			Total:   latest.TotalDarkTime,
			Average: latest.AvgDarkTime,
			Max:     latest.MaxDarkTime,
		},
		Conversation: wellbeing.Conversation{
			Count:         latest.ConversationCount,
			TotalDuration: latest.TotalConversationDuration,
			AvgDuration:   latest.AverageConversationDuration,
			MaxDuration:   latest.MaxConversationDuration,
		},
		Locations: wellbeing.Locations{
			TotalDistance:   latest.TotalDistanceKm,
			UniqueLocations: latest.UniqueLocations,
		},
		Activities: wellbeing.Activities{
			OnBike:  roundTo(latest.OnBike*100, 1),
			OnFoot:  roundTo(latest.OnFoot*100, 1),
			Running: roundTo(latest.Running*100, 1),
			Still:   roundTo(latest.Still*100, 1),
		},
		StressLevel: latest.StressLevel,
		DayHistory:  Series(LastN(records, HistoryDays), StressLevel),
	}, nil
}

// AdvancedMetricsSample is the fixed payload behind the advanced-metrics endpoint.
func AdvancedMetricsSample() types.AdvancedMetrics {
	return types.AdvancedMetrics{
		DarkTime:     wellbeing.DarkTime{Total: 556.53, Average: 139.13, Max: 329.72},
		Conversation: wellbeing.Conversation{Count: 21, TotalDuration: 22971, AvgDuration: 1094, MaxDuration: 5829},
		Locations:    wellbeing.Locations{TotalDistance: 65.4, UniqueLocations: 25},
		Activities:   wellbeing.Activities{OnBike: 3.0, OnFoot: 11.0, Running: 4.7, Still: 81.3},
		StressLevel:  1.67,
		DayHistory:   []float64{1.0, 2.67, 2.5, 4.5, 1.5, 1.5, 1.0, 5.0, 3.0, 2.0, 1.0, 2.0, 3.0},
	}
}
