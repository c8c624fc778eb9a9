package repository

import (
	"context"
	"fmt"

	"ncnews/internal/models"
)

type CommentRepo interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Create(ctx context.Context, articleID int64, author, body string) (*models.Comment, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type commentRepo struct{ db Querier }

func NewCommentRepo(db Querier) CommentRepo { return &commentRepo{db: db} }

const commentColumns = `comment_id, article_id, body, author, votes, created_at`

func (r *commentRepo) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	q := `SELECT ` + commentColumns + `
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, comment_id DESC`

	rows, err := r.db.Query(ctx, q, articleID)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	list := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.Body, &c.Author, &c.Votes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return list, nil
}

// Create inserts a comment. An unknown article or author surfaces as a
// foreign-key violation from the store.
func (r *commentRepo) Create(ctx context.Context, articleID int64, author, body string) (*models.Comment, error) {
	q := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	var c models.Comment
	if err := r.db.QueryRow(ctx, q, articleID, author, body).Scan(
		&c.ID, &c.ArticleID, &c.Body, &c.Author, &c.Votes, &c.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return &c, nil
}

// Delete returns the number of rows removed, 0 or 1.
func (r *commentRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete comment: %w", err)
	}
	return tag.RowsAffected(), nil
}
