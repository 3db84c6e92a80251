package ai

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

type AICallLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, logs []*types.AICallLog) ([]*types.AICallLog, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*types.AICallLog, error)
}

type aiCallLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAICallLogRepo(db *gorm.DB, baseLog *logger.Logger) AICallLogRepo {
	repoLog := baseLog.With("repo", "AICallLogRepo")
	return &aiCallLogRepo{db: db, log: repoLog}
}

func prepare(logs []*types.AICallLog, now time.Time) {
	for _, l := range logs {
		if l == nil {
			continue
		}
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		if l.CreatedAt.IsZero() {
			l.CreatedAt = now
		}
	}
}

func (r *aiCallLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.AICallLog) ([]*types.AICallLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(logs) == 0 {
		return []*types.AICallLog{}, nil
	}
	prepare(logs, time.Now().UTC())
	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListByUserID returns the newest logs first; limit <= 0 means no limit.
func (r *aiCallLogRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*types.AICallLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	results := []*types.AICallLog{}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// memoryAICallLogRepo keeps at most maxRows logs, dropping the oldest.
type memoryAICallLogRepo struct {
	log     *logger.Logger
	mu      sync.RWMutex
	maxRows int
	rows    []types.AICallLog
}

func NewMemoryAICallLogRepo(baseLog *logger.Logger, maxRows int) AICallLogRepo {
	if maxRows <= 0 {
		maxRows = 1000
	}
	return &memoryAICallLogRepo{log: baseLog.With("repo", "MemoryAICallLogRepo"), maxRows: maxRows}
}

func (r *memoryAICallLogRepo) Create(ctx context.Context, _ *gorm.DB, logs []*types.AICallLog) ([]*types.AICallLog, error) {
	if len(logs) == 0 {
		return []*types.AICallLog{}, nil
	}
	prepare(logs, time.Now().UTC())
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range logs {
		if l != nil {
			r.rows = append(r.rows, *l)
		}
	}
	if over := len(r.rows) - r.maxRows; over > 0 {
		r.rows = append([]types.AICallLog(nil), r.rows[over:]...)
	}
	return logs, nil
}

func (r *memoryAICallLogRepo) ListByUserID(ctx context.Context, _ *gorm.DB, userID string, limit int) ([]*types.AICallLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*types.AICallLog{}
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].UserID != userID {
			continue
		}
		row := r.rows[i]
		out = append(out, &row)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
