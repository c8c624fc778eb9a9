package repository

import (
	"context"
	"fmt"

	"ncnews/internal/models"
)

type UserRepo interface {
	List(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type userRepo struct{ db Querier }

func NewUserRepo(db Querier) UserRepo { return &userRepo{db: db} }

func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT username, name, avatar_url FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	list := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return list, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const q = `SELECT username, name, avatar_url FROM users WHERE username = $1`
	var u models.User
	if err := r.db.QueryRow(ctx, q, username).Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
		return nil, mapNoRows(err)
	}
	return &u, nil
}
