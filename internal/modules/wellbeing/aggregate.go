package wellbeing

import (
	"errors"
	"fmt"
	"math"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
)

var ErrUnknownField = errors.New("unknown numeric field")

// Mean averages the named numeric column. An empty sequence averages to 0.
func Mean(records []types.DailyRecord, field string) (float64, error) {
	probe := types.DailyRecord{}
	if probe.NumericField(field) == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return MeanOf(records, func(r types.DailyRecord) float64 {
		v, _ := r.Value(field)
		return v
	}), nil
}

func MeanOf(records []types.DailyRecord, fn func(types.DailyRecord) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range records {
		sum += fn(r)
	}
	return sum / float64(len(records))
}

// PhysicalActivityFraction is the share of the day spent on foot, on a bike or running.
func PhysicalActivityFraction(r types.DailyRecord) float64 {
	return r.OnFoot + r.OnBike + r.Running
}

func MeanPhysicalActivity(records []types.DailyRecord) float64 {
	return MeanOf(records, PhysicalActivityFraction)
}

// LastN returns the trailing n records in their original order. The result shares no backing
// array with records.
func LastN(records []types.DailyRecord, n int) []types.DailyRecord {
	if n <= 0 || len(records) == 0 {
		return []types.DailyRecord{}
	}
	if n > len(records) {
		n = len(records)
	}
	out := make([]types.DailyRecord, n)
	copy(out, records[len(records)-n:])
	return out
}

func Series(records []types.DailyRecord, fn func(types.DailyRecord) float64) []float64 {
	out := make([]float64, 0, len(records))
	for _, r := range records {
		out = append(out, fn(r))
	}
	return out
}

func StressLevel(r types.DailyRecord) float64 { return r.StressLevel }

func ScreenTime(r types.DailyRecord) float64 { return r.ScreenTimeTotal }

func ConversationCount(r types.DailyRecord) float64 { return r.ConversationCount }

// RoundHalfUp rounds .5 toward +Inf, matching how the dashboard rounds minute counts.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Field reads a numeric column by its CSV name.
func Field(r types.DailyRecord, name string) (float64, bool) {
	return r.Value(name)
}
