package wellbeing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		goal     float64
		reversed bool
		status   string
		progress float64
	}{
		{"met goal", 30, 30, false, StatusGood, 100},
		{"over goal caps progress", 60, 30, false, StatusGood, 100},
		{"ninety percent is good", 27, 30, false, StatusGood, 90},
		{"fair band", 18, 30, false, StatusFair, 60},
		{"poor band", 10, 40, false, StatusPoor, 25},
		{"zero goal with activity", 5, 0, false, StatusGood, 100},
		{"zero goal without activity", 0, 0, false, StatusPoor, 0},
		{"reversed under goal", 100, 180, true, StatusLow, 100},
		{"reversed moderate", 200, 160, true, StatusModerate, 80},
		{"reversed high", 400, 100, true, StatusHigh, 25},
		{"reversed zero current treated as one", 0, 1, true, StatusLow, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.current, tc.goal, tc.reversed)
			assert.Equal(t, tc.status, got.Status)
			assert.InDelta(t, tc.progress, got.ProgressPercent, 1e-9)
		})
	}
}

func TestClassifyNoiseReading(t *testing.T) {
	// goal 60 against a 45 reading: 45/60 = 75%.
	got := Classify(AmbientNoiseGoalDB, AmbientNoiseReadingDB, true)
	assert.Equal(t, StatusModerate, got.Status)
	assert.InDelta(t, 75, got.ProgressPercent, 1e-9)
}
