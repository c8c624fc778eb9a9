package repository

import (
	"context"
	"fmt"

	"ncnews/internal/models"
)

type TopicRepo interface {
	List(ctx context.Context) ([]models.Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
}

type topicRepo struct{ db Querier }

func NewTopicRepo(db Querier) TopicRepo { return &topicRepo{db: db} }

func (r *topicRepo) List(ctx context.Context) ([]models.Topic, error) {
	rows, err := r.db.Query(ctx, `SELECT slug, description, img_url FROM topics`)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}
	defer rows.Close()

	list := make([]models.Topic, 0)
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.Slug, &t.Description, &t.ImgURL); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topics: %w", err)
	}
	return list, nil
}

func (r *topicRepo) Exists(ctx context.Context, slug string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)`
	var ok bool
	if err := r.db.QueryRow(ctx, q, slug).Scan(&ok); err != nil {
		return false, fmt.Errorf("check topic: %w", err)
	}
	return ok, nil
}
