package services

import (
	"context"

	"ncnews/internal/logger"
	"ncnews/internal/models"
	"ncnews/internal/repository"

	"go.uber.org/zap"
)

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
}

type userService struct {
	repo repository.UserRepo
}

func NewUserService(repo repository.UserRepo) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("listing users failed (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}
