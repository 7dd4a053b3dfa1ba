package services

import (
	"context"
	"time"

	"github.com/tegarerputra/DuitTrack-sub000/internal/models"
	"github.com/tegarerputra/DuitTrack-sub000/internal/period"
	"github.com/tegarerputra/DuitTrack-sub000/pkg/logger"
)

type userUSStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

// defaultResetConfig is what new profiles start with: periods aligned to
// calendar months.
var defaultResetConfig = period.ResetConfig{Day: 1, Type: period.ResetFixed}

type userService struct {
	store userUSStore
}

func NewUserService(store userUSStore) *userService {
	return &userService{store: store}
}

func (s *userService) Register(ctx context.Context, uid, email, name string) (*models.User, error) {
	log := logger.FromContext(ctx)

	user := &models.User{
		UID:         uid,
		Email:       email,
		Name:        name,
		ResetConfig: defaultResetConfig,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		log.Error("failed to create user in store", "error", err)
		return nil, err
	}

	log.Info("user registered", "name", name)
	return user, nil
}

func (s *userService) Profile(ctx context.Context, uid string) (*models.User, error) {
	return s.store.GetUser(ctx, uid)
}
