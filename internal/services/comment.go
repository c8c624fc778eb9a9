package services

import (
	"context"
	"errors"
	"html"
	"strings"

	"ncnews/internal/apperr"
	"ncnews/internal/logger"
	"ncnews/internal/models"
	"ncnews/internal/repository"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type CommentService interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Create(ctx context.Context, articleID int64, req models.PostCommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type commentService struct {
	comments repository.CommentRepo
	articles repository.ArticleRepo
	users    repository.UserRepo
	policy   *bluemonday.Policy
}

func NewCommentService(comments repository.CommentRepo, articles repository.ArticleRepo, users repository.UserRepo) CommentService {
	return &commentService{
		comments: comments,
		articles: articles,
		users:    users,
		policy:   bluemonday.StrictPolicy(),
	}
}

// ListByArticle checks the article exists before listing, so an unknown
// article is a 404 while a known one without comments is an empty list.
func (s *commentService) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	log := logger.WithCtx(ctx)

	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Article %d not found!", articleID)
		}
		return nil, err
	}

	list, err := s.comments.ListByArticle(ctx, articleID)
	if err != nil {
		log.Error("listing comments failed (repo)", zap.Int64("article_id", articleID), zap.Error(err))
		return nil, err
	}

	log.Debug("comments listed", zap.Int64("article_id", articleID), zap.Int("count", len(list)))
	return list, nil
}

func (s *commentService) Create(ctx context.Context, articleID int64, req models.PostCommentRequest) (*models.Comment, error) {
	log := logger.WithCtx(ctx)

	req.Username = strings.TrimSpace(req.Username)
	check := req
	check.Body = strings.TrimSpace(req.Body)
	if err := validateRequest(check); err != nil {
		log.Debug("comment rejected", zap.Int64("article_id", articleID), zap.Error(err))
		return nil, err
	}
	if !s.isPlainText(req.Body) {
		log.Debug("comment body carries markup", zap.Int64("article_id", articleID))
		return nil, apperr.Validation(msgBodyNotPlainText)
	}

	if _, err := s.users.GetByUsername(ctx, req.Username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Debug("comment from unknown user", zap.String("username", req.Username))
			return nil, apperr.Validation("Username " + req.Username + " is not a valid user!")
		}
		return nil, err
	}

	c, err := s.comments.Create(ctx, articleID, req.Username, req.Body)
	if err != nil {
		log.Warn("creating comment failed (repo)", zap.Int64("article_id", articleID), zap.Error(err))
		return nil, err
	}

	log.Info("comment created",
		zap.Int64("comment_id", c.ID),
		zap.Int64("article_id", articleID),
		zap.String("author", c.Author),
	)
	return c, nil
}

func (s *commentService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)

	n, err := s.comments.Delete(ctx, id)
	if err != nil {
		log.Error("deleting comment failed (repo)", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		return apperr.NotFound("Comment %d not found!", id)
	}

	log.Info("comment deleted", zap.Int64("id", id))
	return nil
}

const msgBodyNotPlainText = "Comment body must be plain text!"

// isPlainText reports whether the strict policy leaves body unchanged. Bodies
// are stored verbatim, so anything the policy would strip is refused instead.
func (s *commentService) isPlainText(body string) bool {
	return html.UnescapeString(s.policy.Sanitize(body)) == body
}
