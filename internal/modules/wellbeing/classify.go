package wellbeing

import "math"

const (
	StatusGood     = "Good"
	StatusFair     = "Fair"
	StatusPoor     = "Poor"
	StatusLow      = "Low"
	StatusModerate = "Moderate"
	StatusHigh     = "High"
)

type Classification struct {
	Status          string
	ProgressPercent float64
}

// Classify grades current against goal. With reversed=false higher is better and the ratio is
// current/goal; with reversed=true lower is better and the ratio is goal/max(current, 1), so any
// current below 1 is treated as 1.
//
// A zero goal on the higher-is-better side has no ratio: any positive current counts as fully met,
// anything else as not started.
func Classify(current, goal float64, reversed bool) Classification {
	if reversed {
		ratio := goal / math.Max(current, 1) * 100
		status := StatusHigh
		switch {
		case ratio >= 100:
			status = StatusLow
		case ratio >= 75:
			status = StatusModerate
		}
		return Classification{Status: status, ProgressPercent: math.Min(100, ratio)}
	}

	if goal == 0 {
		if current > 0 {
			return Classification{Status: StatusGood, ProgressPercent: 100}
		}
		return Classification{Status: StatusPoor, ProgressPercent: 0}
	}
	ratio := current / goal * 100
	status := StatusPoor
	switch {
	case ratio >= 90:
		status = StatusGood
	case ratio >= 60:
		status = StatusFair
	}
	return Classification{Status: status, ProgressPercent: math.Min(100, ratio)}
}
