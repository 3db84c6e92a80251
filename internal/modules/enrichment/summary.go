package enrichment

import (
	"fmt"
	"strings"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
	"github.com/yungbote/mindpulse-backend/internal/modules/wellbeing"
)

// recentDays bounds the "Recent patterns" slices.
const recentDays = 7

// BuildSummary renders the plain-text digest sent to the model. With zero records every
// average renders as 0.00.
func BuildSummary(data types.ProcessedUserData) string {
	recs := data.Records
	recent := wellbeing.LastN(recs, recentDays)

	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "User ID: %s\n", data.UserID)
	fmt.Fprintf(&b, "Data records: %d days of monitoring\n", len(recs))
	fmt.Fprintf(&b, "Average stress level: %.2f (scale 1-5)\n", wellbeing.MeanOf(recs, wellbeing.StressLevel))
	fmt.Fprintf(&b, "Average screen time: %.2f minutes per day\n", wellbeing.MeanOf(recs, wellbeing.ScreenTime))
	fmt.Fprintf(&b, "Average physical activity: %.2f%% of day\n", wellbeing.MeanPhysicalActivity(recs)*100)
	fmt.Fprintf(&b, "Average conversations: %.2f per day\n", wellbeing.MeanOf(recs, wellbeing.ConversationCount))

	b.WriteString("\nKey correlations:\n")
	lines := make([]string, 0, len(data.Correlations))
	for _, c := range data.Correlations {
		lines = append(lines, fmt.Sprintf("- %s and %s: %s (strength: %.2f)", c.Factor1, c.Factor2, c.Description, c.CorrelationStrength))
	}
	b.WriteString(strings.Join(lines, "\n"))

	b.WriteString("\n\nPrimary stress factors:\n")
	lines = lines[:0]
	for _, f := range data.StressFactors {
		lines = append(lines, fmt.Sprintf("- %s: %s (impact: %.2f)", f.Factor, f.Description, f.Impact))
	}
	b.WriteString(strings.Join(lines, "\n"))

	b.WriteString("\n\nRecent patterns:\n")
	fmt.Fprintf(&b, "- Stress levels: %s\n", joinSeries(recent, wellbeing.StressLevel, "%.1f"))
	fmt.Fprintf(&b, "- Screen time: %s\n", joinSeries(recent, rounded(wellbeing.ScreenTime), "%.0f"))
	fmt.Fprintf(&b, "- Physical activity (%% of day): %s\n", joinSeries(recent, activityPercent, "%.1f"))
	fmt.Fprintf(&b, "- Conversations: %s\n", joinSeries(recent, rounded(wellbeing.ConversationCount), "%.0f"))
	return b.String()
}

func joinSeries(recs []types.DailyRecord, fn func(types.DailyRecord) float64, format string) string {
	parts := make([]string, 0, len(recs))
	for _, v := range wellbeing.Series(recs, fn) {
		parts = append(parts, fmt.Sprintf(format, v))
	}
	return strings.Join(parts, ", ")
}

func rounded(fn func(types.DailyRecord) float64) func(types.DailyRecord) float64 {
	return func(r types.DailyRecord) float64 { return wellbeing.RoundHalfUp(fn(r)) }
}

func activityPercent(r types.DailyRecord) float64 {
	return wellbeing.PhysicalActivityFraction(r) * 100
}
