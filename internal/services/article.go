package services

import (
	"context"
	"errors"
	"strings"

	"ncnews/internal/apperr"
	"ncnews/internal/logger"
	"ncnews/internal/models"
	"ncnews/internal/repository"

	"go.uber.org/zap"
)

type ArticleService interface {
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	List(ctx context.Context, params models.ArticleListParams) ([]models.Article, error)
	UpdateVotes(ctx context.Context, id int64, req models.PatchVotesRequest) (*models.Article, error)
}

type articleService struct {
	repo   repository.ArticleRepo
	topics repository.TopicRepo
}

func NewArticleService(repo repository.ArticleRepo, topics repository.TopicRepo) ArticleService {
	return &articleService{repo: repo, topics: topics}
}

func (s *articleService) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("fetching article", zap.Int64("id", id))

	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		log.Debug("article not found", zap.Int64("id", id))
		return nil, apperr.NotFound("Article %d not found!", id)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *articleService) List(ctx context.Context, params models.ArticleListParams) ([]models.Article, error) {
	log := logger.WithCtx(ctx)

	q, err := s.resolveQuery(ctx, params)
	if err != nil {
		return nil, err
	}

	log.Debug("listing articles",
		zap.String("sort_by", string(q.Sort)),
		zap.String("order", string(q.Order)),
		zap.String("topic", q.Topic),
	)

	list, err := s.repo.List(ctx, q)
	if err != nil {
		log.Error("listing articles failed (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("articles listed", zap.Int("count", len(list)))
	return list, nil
}

// resolveQuery applies the fallback policy: an unknown sort_by or order is
// replaced by its default and an unknown topic drops the filter. None of them
// is an error.
func (s *articleService) resolveQuery(ctx context.Context, p models.ArticleListParams) (repository.ArticleQuery, error) {
	log := logger.WithCtx(ctx)
	q := repository.ArticleQuery{
		Sort:  repository.DefaultSortField,
		Order: repository.DefaultSortOrder,
	}

	if p.SortBy != "" {
		if f, ok := repository.ParseSortField(p.SortBy); ok {
			q.Sort = f
		} else {
			log.Debug("ignoring unknown sort_by", zap.String("sort_by", p.SortBy))
		}
	}

	if p.Order != "" {
		if o, ok := repository.ParseSortOrder(p.Order); ok {
			q.Order = o
		} else {
			log.Debug("ignoring unknown order", zap.String("order", p.Order))
		}
	}

	if topic := strings.TrimSpace(p.Topic); topic != "" {
		exists, err := s.topics.Exists(ctx, topic)
		if err != nil {
			return q, err
		}
		if exists {
			q.Topic = topic
		} else {
			log.Debug("ignoring unknown topic", zap.String("topic", topic))
		}
	}

	return q, nil
}

func (s *articleService) UpdateVotes(ctx context.Context, id int64, req models.PatchVotesRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	if err := validateRequest(req); err != nil {
		log.Debug("vote update rejected", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	delta := *req.IncVotes

	a, err := s.repo.IncrementVotes(ctx, id, delta)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("Article %d not found!", id)
	}
	if err != nil {
		return nil, err
	}

	log.Info("article votes updated", zap.Int64("id", id), zap.Int("delta", delta), zap.Int("votes", a.Votes))
	return a, nil
}
