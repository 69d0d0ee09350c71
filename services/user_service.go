package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"nutritrack/models"
)

type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"max=120"`
}

type UserService struct {
	users  UserStore
	logger *zap.Logger
}

func NewUserService(users UserStore, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{users: users, logger: logger}
}

func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}

	u := &models.User{Email: req.Email, DisplayName: strings.TrimSpace(req.DisplayName)}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.logger.Info("user created", zap.Uint("user_id", u.ID))
	return u, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}
