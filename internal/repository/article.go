package repository

import (
	"context"
	"fmt"

	"ncnews/internal/models"
)

type ArticleRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	List(ctx context.Context, q ArticleQuery) ([]models.Article, error)
	IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error)
}

type articleRepo struct{ db Querier }

func NewArticleRepo(db Querier) ArticleRepo { return &articleRepo{db: db} }

const articleColumns = `author, title, article_id, body, topic, created_at, votes, article_img_url`

func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	q := `SELECT ` + articleColumns + ` FROM articles WHERE article_id = $1`

	var a models.Article
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&a.Author, &a.Title, &a.ID, &a.Body, &a.Topic, &a.CreatedAt, &a.Votes, &a.ArticleImgURL,
	); err != nil {
		return nil, mapNoRows(err)
	}
	return &a, nil
}

func (r *articleRepo) List(ctx context.Context, aq ArticleQuery) ([]models.Article, error) {
	sql := `
		SELECT a.author, a.title, a.article_id, a.topic, a.created_at, a.votes, a.article_img_url,
		       COUNT(c.comment_id)::int AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
	`
	args := []any{}
	if aq.Topic != "" {
		sql += ` WHERE a.topic = $1`
		args = append(args, aq.Topic)
	}
	sql += ` GROUP BY a.article_id` + aq.orderBy()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	list := make([]models.Article, 0)
	for rows.Next() {
		var a models.Article
		var count int
		if err := rows.Scan(
			&a.Author, &a.Title, &a.ID, &a.Topic, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &count,
		); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		a.CommentCount = &count
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return list, nil
}

// IncrementVotes adds delta (which may be negative) in a single UPDATE so
// concurrent votes never overwrite each other.
func (r *articleRepo) IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error) {
	q := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING ` + articleColumns

	var a models.Article
	if err := r.db.QueryRow(ctx, q, delta, id).Scan(
		&a.Author, &a.Title, &a.ID, &a.Body, &a.Topic, &a.CreatedAt, &a.Votes, &a.ArticleImgURL,
	); err != nil {
		return nil, mapNoRows(err)
	}
	return &a, nil
}
