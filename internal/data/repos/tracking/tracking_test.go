package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/mindpulse-backend/internal/data/repos/testutil"
	types "github.com/yungbote/mindpulse-backend/internal/domain"
	pkgerrors "github.com/yungbote/mindpulse-backend/internal/pkg/errors"
	"github.com/yungbote/mindpulse-backend/internal/pkg/pointers"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func testMetricRepo(t *testing.T, repo MetricRepo) {
	t.Helper()
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, []*types.Metric{
		{UserID: 1, Date: now.Add(-10 * 24 * time.Hour), MentalScore: 60},
		{UserID: 1, Date: now.Add(-2 * 24 * time.Hour), MentalScore: 70},
		{UserID: 1, Date: now.Add(-5 * 24 * time.Hour), MentalScore: 80},
		{UserID: 2, Date: now, MentalScore: 90},
	})
	require.NoError(t, err)
	require.Len(t, created, 4)
	assert.Equal(t, int64(1), created[0].ID)
	assert.Equal(t, int64(4), created[3].ID)

	all, err := repo.ListByUserID(ctx, nil, 1)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []float64{60, 70, 80}, []float64{all[0].MentalScore, all[1].MentalScore, all[2].MentalScore})

	latest, err := repo.GetLatestByUserID(ctx, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 70.0, latest.MentalScore)

	weekly, err := repo.ListWeeklyByUserID(ctx, nil, 1, now)
	require.NoError(t, err)
	require.Len(t, weekly, 2)
	assert.Equal(t, 70.0, weekly[0].MentalScore)
	assert.Equal(t, 80.0, weekly[1].MentalScore)

	_, err = repo.GetLatestByUserID(ctx, nil, 999)
	assert.True(t, errors.Is(err, pkgerrors.ErrNotFound), "got %v", err)

	none, err := repo.ListByUserID(ctx, nil, 999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func testLatestTieGoesToLaterInsert(t *testing.T, repo MetricRepo) {
	t.Helper()
	ctx := context.Background()
	_, err := repo.Create(ctx, nil, []*types.Metric{
		{UserID: 7, Date: now, MentalScore: 1},
		{UserID: 7, Date: now, MentalScore: 2},
	})
	require.NoError(t, err)
	latest, err := repo.GetLatestByUserID(ctx, nil, 7)
	require.NoError(t, err)
	assert.Equal(t, 2.0, latest.MentalScore)
}

func testSurveyRepo(t *testing.T, repo SurveyRepo) {
	t.Helper()
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, []*types.SurveyResponse{
		{UserID: "1", Date: now.Add(-time.Hour), Mood: "ok", StressLevel: 4, Notes: pointers.String("first")},
		{UserID: "1", Date: now, Mood: "good", StressLevel: 2},
		{UserID: "2", Mood: "tired", StressLevel: 6},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.False(t, created[2].Date.IsZero(), "zero date should be stamped")

	latest, err := repo.GetLatestByUserID(ctx, nil, "1")
	require.NoError(t, err)
	assert.Equal(t, "good", latest.Mood)
	assert.Equal(t, int64(2), latest.ID)

	list, err := repo.ListByUserID(ctx, nil, "1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	updated, err := repo.Update(ctx, nil, 1, types.SurveyPatch{StressLevel: pointers.Float64(7)})
	require.NoError(t, err)
	assert.Equal(t, 7.0, updated.StressLevel)
	assert.Equal(t, "ok", updated.Mood)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "first", *updated.Notes)

	reread, err := repo.GetByID(ctx, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, reread.StressLevel)
	assert.Equal(t, "ok", reread.Mood)

	unchanged, err := repo.Update(ctx, nil, 2, types.SurveyPatch{})
	require.NoError(t, err)
	assert.Equal(t, "good", unchanged.Mood)

	_, err = repo.Update(ctx, nil, 999, types.SurveyPatch{Mood: pointers.String("x")})
	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)

	_, err = repo.GetLatestByUserID(ctx, nil, "999")
	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
}

func TestMemoryMetricRepo(t *testing.T) {
	testMetricRepo(t, NewMemoryMetricRepo(testutil.Logger(t)))
	testLatestTieGoesToLaterInsert(t, NewMemoryMetricRepo(testutil.Logger(t)))
}

func TestGormMetricRepo(t *testing.T) {
	db := testutil.DB(t)
	testMetricRepo(t, NewMetricRepo(db, testutil.Logger(t)))
	testLatestTieGoesToLaterInsert(t, NewMetricRepo(db, testutil.Logger(t)))
}

func TestMemorySurveyRepo(t *testing.T) {
	testSurveyRepo(t, NewMemorySurveyRepo(testutil.Logger(t)))
}

func TestGormSurveyRepo(t *testing.T) {
	testSurveyRepo(t, NewSurveyRepo(testutil.DB(t), testutil.Logger(t)))
}

func TestMemoryReposHandOutCopies(t *testing.T) {
	repo := NewMemorySurveyRepo(testutil.Logger(t))
	ctx := context.Background()
	_, err := repo.Create(ctx, nil, []*types.SurveyResponse{{UserID: "1", Mood: "ok"}})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, nil, 1)
	require.NoError(t, err)
	got.Mood = "mutated"

	again, err := repo.GetByID(ctx, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, "ok", again.Mood)
}

func TestGormReposOrderMixedOffsetsByInstant(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	tokyo := time.FixedZone("JST", 9*60*60)

	surveys := NewSurveyRepo(db, testutil.Logger(t))
	_, err := surveys.Create(ctx, nil, []*types.SurveyResponse{
		{UserID: "1", Mood: "earlier", Date: now.In(tokyo)},
		{UserID: "1", Mood: "later", Date: now.Add(2 * time.Hour)},
	})
	require.NoError(t, err)
	latest, err := surveys.GetLatestByUserID(ctx, nil, "1")
	require.NoError(t, err)
	assert.Equal(t, "later", latest.Mood)
	assert.True(t, latest.Date.Equal(now.Add(2*time.Hour)))

	metrics := NewMetricRepo(db, testutil.Logger(t))
	_, err = metrics.Create(ctx, nil, []*types.Metric{
		{UserID: 1, Date: now.In(tokyo), MentalScore: 75},
	})
	require.NoError(t, err)
	weekly, err := metrics.ListWeeklyByUserID(ctx, nil, 1, now.Add(time.Hour).In(tokyo))
	require.NoError(t, err)
	require.Len(t, weekly, 1)
	assert.Equal(t, 75.0, weekly[0].MentalScore)
}
