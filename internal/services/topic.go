package services

import (
	"context"

	"ncnews/internal/logger"
	"ncnews/internal/models"
	"ncnews/internal/repository"

	"go.uber.org/zap"
)

type TopicService interface {
	List(ctx context.Context) ([]models.Topic, error)
}

type topicService struct {
	repo repository.TopicRepo
}

func NewTopicService(repo repository.TopicRepo) TopicService {
	return &topicService{repo: repo}
}

func (s *topicService) List(ctx context.Context) ([]models.Topic, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("listing topics failed (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}
