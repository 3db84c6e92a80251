package services

import (
	"context"

	"github.com/yungbote/mindpulse-backend/internal/data/repos"
	types "github.com/yungbote/mindpulse-backend/internal/domain"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

type UserService interface {
	GetByID(ctx context.Context, id int64) (*types.User, error)
}

type userService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(log *logger.Logger, userRepo repos.UserRepo) UserService {
	return &userService{log: log.With("service", "UserService"), userRepo: userRepo}
}

// GetByID returns the stored user; the password hash never leaves the service via JSON.
func (us *userService) GetByID(ctx context.Context, id int64) (*types.User, error) {
	return us.userRepo.GetByID(ctx, nil, id)
}
