package wellbeing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
)

func recordsWithStress(levels ...float64) []types.DailyRecord {
	out := make([]types.DailyRecord, 0, len(levels))
	for i, lvl := range levels {
		out = append(out, types.DailyRecord{
			UserID:      "u00",
			Date:        fmt.Sprintf("2023-05-%02d", i+1),
			StressLevel: lvl,
		})
	}
	return out
}

func TestMean(t *testing.T) {
	recs := recordsWithStress(1, 2, 3, 4)
	got, err := Mean(recs, "stress_level")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-9)

	got, err = Mean(nil, "stress_level")
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = Mean(recs, "nope")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = Mean(recs, "user_id")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestPhysicalActivity(t *testing.T) {
	recs := []types.DailyRecord{
		{OnFoot: 0.1, OnBike: 0.05, Running: 0.05, Still: 0.8},
		{OnFoot: 0.2, OnBike: 0.0, Running: 0.0, Still: 0.8},
	}
	assert.InDelta(t, 0.2, PhysicalActivityFraction(recs[0]), 1e-9)
	assert.InDelta(t, 0.2, MeanPhysicalActivity(recs), 1e-9)
	assert.Zero(t, MeanPhysicalActivity(nil))
}

func TestLastN(t *testing.T) {
	recs := recordsWithStress(1, 2, 3, 4, 5)

	tail := LastN(recs, 2)
	assert.Equal(t, []float64{4, 5}, Series(tail, StressLevel))

	assert.Len(t, LastN(recs, 10), 5)
	assert.Empty(t, LastN(recs, 0))
	assert.Empty(t, LastN(recs, -3))
	assert.Empty(t, LastN(nil, 3))

	tail[0].StressLevel = 99
	assert.Equal(t, 4.0, recs[3].StressLevel)
}

func TestField(t *testing.T) {
	r := types.DailyRecord{ScreenTimeTotal: 312, UniqueLocations: 7}
	v, ok := Field(r, "screen_time_total")
	assert.True(t, ok)
	assert.Equal(t, 312.0, v)

	v, ok = Field(r, "unique_locations")
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	_, ok = Field(r, "date")
	assert.False(t, ok)
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3.0, RoundHalfUp(2.5))
	assert.Equal(t, -2.0, RoundHalfUp(-2.5))
	assert.Equal(t, 2.0, RoundHalfUp(2.49))
	assert.Equal(t, 81.3, roundTo(0.813*100, 1))
}
