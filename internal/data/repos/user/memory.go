package user

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	types "github.com/yungbote/mindpulse-backend/internal/domain"
	pkgerrors "github.com/yungbote/mindpulse-backend/internal/pkg/errors"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

// memoryUserRepo keeps users in process memory. The tx argument is ignored.
type memoryUserRepo struct {
	log    *logger.Logger
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]types.User
}

func NewMemoryUserRepo(baseLog *logger.Logger) UserRepo {
	return &memoryUserRepo{
		log:    baseLog.With("repo", "MemoryUserRepo"),
		nextID: 1,
		rows:   map[int64]types.User{},
	}
}

func (r *memoryUserRepo) Create(ctx context.Context, _ *gorm.DB, users []*types.User) ([]*types.User, error) {
	if len(users) == 0 {
		return []*types.User{}, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := map[string]bool{}
	for _, u := range users {
		if u == nil {
			return nil, fmt.Errorf("nil user: %w", pkgerrors.ErrInvalidArgument)
		}
		if seen[u.Username] || r.usernameTakenLocked(u.Username) {
			return nil, fmt.Errorf("username %q already exists: %w", u.Username, pkgerrors.ErrInvalidArgument)
		}
		seen[u.Username] = true
	}
	for _, u := range users {
		u.ID = r.nextID
		r.nextID++
		r.rows[u.ID] = *u
	}
	return users, nil
}

func (r *memoryUserRepo) usernameTakenLocked(username string) bool {
	for _, row := range r.rows {
		if row.Username == username {
			return true
		}
	}
	return false
}

func (r *memoryUserRepo) GetByID(ctx context.Context, _ *gorm.DB, userID int64) (*types.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[userID]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, pkgerrors.ErrNotFound)
	}
	return &row, nil
}

func (r *memoryUserRepo) GetByUsername(ctx context.Context, _ *gorm.DB, username string) (*types.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.Username == username {
			out := row
			return &out, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, pkgerrors.ErrNotFound)
}
