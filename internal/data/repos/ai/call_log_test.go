package ai

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/yungbote/mindpulse-backend/internal/data/repos/testutil"
	types "github.com/yungbote/mindpulse-backend/internal/domain"
)

func testCallLogRepo(t *testing.T, repo AICallLogRepo) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, nil, []*types.AICallLog{
		{UserID: "u00", Provider: "anthropic", Model: "m", Status: "ok", Request: datatypes.JSON(`{"a":1}`), Response: datatypes.JSON(`{}`), CreatedAt: base},
		{UserID: "u00", Provider: "anthropic", Model: "m", Status: "error", Error: "boom", Request: datatypes.JSON(`{}`), Response: datatypes.JSON(`null`), CreatedAt: base.Add(time.Minute)},
		{UserID: "u01", Provider: "openai", Model: "m", Status: "ok", Request: datatypes.JSON(`{}`), Response: datatypes.JSON(`{}`)},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)
	for _, c := range created {
		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.False(t, c.CreatedAt.IsZero())
	}

	rows, err := repo.ListByUserID(ctx, nil, "u00", 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "error", rows[0].Status)

	rows, err = repo.ListByUserID(ctx, nil, "u00", 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestMemoryAICallLogRepo(t *testing.T) {
	testCallLogRepo(t, NewMemoryAICallLogRepo(testutil.Logger(t), 0))
}

func TestGormAICallLogRepo(t *testing.T) {
	testCallLogRepo(t, NewAICallLogRepo(testutil.DB(t), testutil.Logger(t)))
}

func TestMemoryAICallLogRepoBounded(t *testing.T) {
	repo := NewMemoryAICallLogRepo(testutil.Logger(t), 2)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, nil, []*types.AICallLog{{UserID: "u00", Model: string(rune('a' + i))}})
		require.NoError(t, err)
	}
	rows, err := repo.ListByUserID(ctx, nil, "u00", 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "e", rows[0].Model)
	assert.Equal(t, "d", rows[1].Model)
}
