package wellbeing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
)

func latestFixture() types.DailyRecord {
	return types.DailyRecord{
		Date:                        "2023-05-11",
		UserID:                      "u00",
		OnBike:                      0.03,
		OnFoot:                      0.11,
		Running:                     0.047,
		Still:                       0.813,
		ConversationCount:           21,
		TotalConversationDuration:   22971,
		AverageConversationDuration: 1094,
		MaxConversationDuration:     5829,
		TotalDarkTime:               556.53,
		AvgDarkTime:                 139.13,
		MaxDarkTime:                 329.72,
		ScreenTimeTotal:             312,
		StressLevel:                 1.67,
		TotalDistanceKm:             65.4,
		UniqueLocations:             25,
	}
}

func TestBuildMetrics(t *testing.T) {
	m, err := BuildMetrics("u00", []types.DailyRecord{latestFixture()})
	require.NoError(t, err)

	assert.InDelta(t, 66.6, m.MentalScore, 1e-9)

	// 0.187 of a day is 269.28 minutes.
	assert.Equal(t, 269.0, m.PhysicalActivity.Current)
	assert.Equal(t, 30.0, m.PhysicalActivity.Goal)
	assert.Equal(t, StatusGood, m.PhysicalActivity.Status)

	assert.Equal(t, 418.0, m.Sleep.Current)
	assert.Equal(t, 480.0, m.Sleep.Goal)
	assert.Equal(t, StatusFair, m.Sleep.Status)

	assert.Equal(t, 312.0, m.ScreenTime.Current)
	assert.Equal(t, 180.0, m.ScreenTime.Goal)
	assert.Equal(t, StatusLow, m.ScreenTime.Status)

	assert.Equal(t, 45.0, m.AmbientNoise.Current)
	assert.Equal(t, 60.0, m.AmbientNoise.Goal)
	assert.Equal(t, StatusModerate, m.AmbientNoise.Status)

	assert.Equal(t, 556.53, m.DarkTime.Total)
	assert.Equal(t, 21.0, m.Conversation.Count)
	assert.Equal(t, 25.0, m.Locations.UniqueLocations)

	assert.Equal(t, 3.0, m.Activities.OnBike)
	assert.Equal(t, 11.0, m.Activities.OnFoot)
	assert.Equal(t, 4.7, m.Activities.Running)
	assert.Equal(t, 81.3, m.Activities.Still)

	assert.Equal(t, 1.67, m.StressLevel)
	assert.Equal(t, []float64{1.67}, m.DayHistory)
}

func TestBuildMetricsMentalScoreBounds(t *testing.T) {
	for _, tc := range []struct {
		stress float64
		score  float64
	}{
		{0, 100},
		{2.5, 50},
		{5, 0},
		{7, 0},
	} {
		m, err := BuildMetrics("u00", []types.DailyRecord{{StressLevel: tc.stress}})
		require.NoError(t, err)
		assert.InDelta(t, tc.score, m.MentalScore, 1e-9, "stress %v", tc.stress)
	}
}

func TestBuildMetricsDayHistoryWindow(t *testing.T) {
	levels := make([]float64, 20)
	for i := range levels {
		levels[i] = float64(i % 5)
	}
	m, err := BuildMetrics("u00", recordsWithStress(levels...))
	require.NoError(t, err)
	require.Len(t, m.DayHistory, HistoryDays)
	assert.Equal(t, levels[6:], m.DayHistory)
	assert.Equal(t, levels[19], m.StressLevel)
}

func TestBuildMetricsNoRecords(t *testing.T) {
	_, err := BuildMetrics("u00", nil)
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestAdvancedMetricsSample(t *testing.T) {
	a := AdvancedMetricsSample()
	assert.Len(t, a.DayHistory, 13)
	assert.Equal(t, 1.67, a.StressLevel)
	assert.Equal(t, 81.3, a.Activities.Still)
}
