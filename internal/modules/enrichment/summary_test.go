package enrichment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
)

func TestBuildSummary(t *testing.T) {
	data := types.ProcessedUserData{
		UserID: "u00",
		Records: []types.DailyRecord{
			{StressLevel: 1, ScreenTimeTotal: 590.7, OnFoot: 0.08, OnBike: 0.03, Running: 0.04, ConversationCount: 21},
			{StressLevel: 2, ScreenTimeTotal: 600, OnFoot: 0.09, OnBike: 0.02, Running: 0.03, ConversationCount: 23},
		},
		Correlations: []types.Correlation{
			{Factor1: "a", Factor2: "b", CorrelationStrength: 0.5, Description: "d1"},
			{Factor1: "c", Factor2: "d", CorrelationStrength: -0.25, Description: "d2"},
		},
		StressFactors: []types.StressFactor{{Factor: "noise", Impact: 0.4, Description: "loud"}},
	}

	want := "\nUser ID: u00\n" +
		"Data records: 2 days of monitoring\n" +
		"Average stress level: 1.50 (scale 1-5)\n" +
		"Average screen time: 595.35 minutes per day\n" +
		"Average physical activity: 14.50% of day\n" +
		"Average conversations: 22.00 per day\n" +
		"\nKey correlations:\n" +
		"- a and b: d1 (strength: 0.50)\n" +
		"- c and d: d2 (strength: -0.25)\n" +
		"\nPrimary stress factors:\n" +
		"- noise: loud (impact: 0.40)\n" +
		"\nRecent patterns:\n" +
		"- Stress levels: 1.0, 2.0\n" +
		"- Screen time: 591, 600\n" +
		"- Physical activity (% of day): 15.0, 14.0\n" +
		"- Conversations: 21, 23\n"
	assert.Equal(t, want, BuildSummary(data))
}

func TestBuildSummaryNoRecords(t *testing.T) {
	got := BuildSummary(types.ProcessedUserData{UserID: "x"})
	assert.Contains(t, got, "Data records: 0 days of monitoring")
	assert.Contains(t, got, "Average stress level: 0.00 (scale 1-5)")
	assert.Contains(t, got, "Average conversations: 0.00 per day")
	assert.True(t, strings.HasSuffix(got, "- Conversations: \n"))
}

func TestBuildSummaryKeepsLastSevenDays(t *testing.T) {
	var recs []types.DailyRecord
	for i := 1; i <= 10; i++ {
		recs = append(recs, types.DailyRecord{StressLevel: float64(i)})
	}
	got := BuildSummary(types.ProcessedUserData{UserID: "x", Records: recs})
	assert.Contains(t, got, "- Stress levels: 4.0, 5.0, 6.0, 7.0, 8.0, 9.0, 10.0\n")
}
