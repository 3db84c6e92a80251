package records

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
	"github.com/yungbote/mindpulse-backend/internal/domain/wellbeing"
	"github.com/yungbote/mindpulse-backend/internal/observability"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

var (
	ErrBadHeader    = errors.New("records: csv header lacks date or user_id")
	ErrMalformedRow = errors.New("records: malformed row")
)

type Loader struct {
	log *logger.Logger
	src Source
}

func NewLoader(src Source, baseLog *logger.Logger) *Loader {
	return &Loader{log: baseLog.With("service", "RecordLoader", "source", src.Name()), src: src}
}

// LoadUser scans the whole CSV and returns the rows whose user_id equals userID, in file
// order. A missing CSV yields no rows. Only the requested user's rows are parsed strictly.
func (l *Loader) LoadUser(ctx context.Context, userID string) (out []types.DailyRecord, err error) {
	ctx, span := observability.StartSpan(ctx, "records.LoadUser", attribute.String("records.source", l.src.Name()))
	start := time.Now()
	defer func() {
		span.SetAttributes(attribute.Int("records.count", len(out)))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	rc, err := l.src.Open(ctx)
	if errors.Is(err, ErrSourceMissing) {
		l.log.Warn("Record source missing; serving no rows", "user_id", userID)
		return []types.DailyRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	out, err = l.scan(ctx, rc, userID)
	if err != nil {
		if errors.Is(err, ErrMalformedRow) {
			observability.Current().IncRecordError(l.src.Name(), "malformed")
		}
		return nil, err
	}
	observability.Current().AddRecordsLoaded(l.src.Name(), len(out))
	l.log.Debug("Loaded records", "user_id", userID, "count", len(out), "duration_ms", time.Since(start).Milliseconds())
	return out, nil
}

func (l *Loader) scan(ctx context.Context, r io.Reader, userID string) ([]types.DailyRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []types.DailyRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	out := []types.DailyRecord{}
	for line := 2; ; line++ {
		if line%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		if cols.userID >= len(row) || strings.TrimSpace(row[cols.userID]) != userID {
			continue
		}
		rec, err := cols.parse(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rec)
	}
}

type columnMap struct {
	names  []string
	date   int
	userID int
	width  int
}

// mapHeader resolves column positions by name; unknown columns are ignored.
func mapHeader(header []string) (columnMap, error) {
	m := columnMap{names: make([]string, len(header)), date: -1, userID: -1, width: len(header)}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		m.names[i] = name
		switch name {
		case wellbeing.ColumnDate:
			m.date = i
		case wellbeing.ColumnUserID:
			m.userID = i
		}
	}
	if m.date < 0 || m.userID < 0 {
		return m, ErrBadHeader
	}
	return m, nil
}

// parse fills a record from one row. Blank numeric cells read as 0.
func (m columnMap) parse(row []string) (types.DailyRecord, error) {
	var rec types.DailyRecord
	if len(row) != m.width {
		return rec, fmt.Errorf("%w: %d fields, header has %d", ErrMalformedRow, len(row), m.width)
	}
	rec.Date = strings.TrimSpace(row[m.date])
	rec.UserID = strings.TrimSpace(row[m.userID])
	for i, name := range m.names {
		p := rec.NumericField(name)
		if p == nil {
			continue
		}
		raw := strings.TrimSpace(row[i])
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return rec, fmt.Errorf("%w: column %s: %q", ErrMalformedRow, name, raw)
		}
		*p = v
	}
	return rec, nil
}
