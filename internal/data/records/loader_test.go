package records

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

type stringSource string

func (s stringSource) Name() string { return "inline" }

func (s stringSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(s))), nil
}

func TestLoadUserFromSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, SampleCSV(), 0o644))

	l := NewLoader(FileSource{Path: path}, logger.NewNop())
	recs, err := l.LoadUser(context.Background(), "u00")
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "2023-05-09", recs[0].Date)
	assert.Equal(t, "u00", recs[0].UserID)
	assert.InDelta(t, 0.08, recs[0].OnFoot, 1e-9)
	assert.InDelta(t, 590.7, recs[0].ScreenTimeTotal, 1e-9)
	assert.InDelta(t, 1, recs[0].StressLevel, 1e-9)
	assert.InDelta(t, 25, recs[0].UniqueLocations, 1e-9)
	assert.Equal(t, "2023-05-11", recs[2].Date)
}

func TestLoadUserFiltersAndKeepsOrder(t *testing.T) {
	csv := "user_id,date,stress_level,extra\n" +
		"u01,2023-01-02,2,x\n" +
		"u02,2023-01-01,5,y\n" +
		"u01,2023-01-01,3,z\n"
	l := NewLoader(stringSource(csv), logger.NewNop())

	recs, err := l.LoadUser(context.Background(), "u01")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "2023-01-02", recs[0].Date)
	assert.Equal(t, "2023-01-01", recs[1].Date)
	assert.InDelta(t, 3, recs[1].StressLevel, 1e-9)

	recs, err = l.LoadUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestLoadUserMissingFile(t *testing.T) {
	l := NewLoader(FileSource{Path: filepath.Join(t.TempDir(), "absent.csv")}, logger.NewNop())
	recs, err := l.LoadUser(context.Background(), "u00")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestLoadUserMalformed(t *testing.T) {
	csv := "date,user_id,stress_level\n" +
		"2023-01-01,u02,oops\n" +
		"2023-01-01,u01,high\n"
	l := NewLoader(stringSource(csv), logger.NewNop())

	_, err := l.LoadUser(context.Background(), "u01")
	assert.ErrorIs(t, err, ErrMalformedRow)

	// rows of other users are never parsed
	recs, err := l.LoadUser(context.Background(), "u03")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestLoadUserShortRow(t *testing.T) {
	l := NewLoader(stringSource("date,user_id,stress_level\n2023-01-01,u01\n"), logger.NewNop())
	_, err := l.LoadUser(context.Background(), "u01")
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestLoadUserBlankCellReadsZero(t *testing.T) {
	l := NewLoader(stringSource("date,user_id,stress_level,on_foot\n2023-01-01,u01,,0.5\n"), logger.NewNop())
	recs, err := l.LoadUser(context.Background(), "u01")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Zero(t, recs[0].StressLevel)
	assert.InDelta(t, 0.5, recs[0].OnFoot, 1e-9)
}

func TestLoadUserBadHeader(t *testing.T) {
	l := NewLoader(stringSource("day,person\n2023-01-01,u01\n"), logger.NewNop())
	_, err := l.LoadUser(context.Background(), "u01")
	assert.ErrorIs(t, err, ErrBadHeader)
}

func TestLoadUserCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := NewLoader(FileSource{Path: filepath.Join(t.TempDir(), "data.csv")}, logger.NewNop())
	_, err := l.LoadUser(ctx, "u00")
	assert.ErrorIs(t, err, context.Canceled)
}
