package seed

import (
	"context"
	"fmt"

	"ncnews/internal/db"
	"ncnews/internal/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Seed drops and recreates the schema, then loads data into it inside a
// single transaction.
func Seed(ctx context.Context, pool *pgxpool.Pool, data *Data) error {
	if err := data.Check(); err != nil {
		return fmt.Errorf("invalid seed data: %w", err)
	}
	if err := db.Recreate(pool); err != nil {
		return fmt.Errorf("recreate schema: %w", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insert(ctx, tx, data); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insert(ctx context.Context, tx pgx.Tx, data *Data) error {
	log := logger.WithCtx(ctx)

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"topics"},
		[]string{"slug", "description", "img_url"},
		pgx.CopyFromSlice(len(data.Topics), func(i int) ([]any, error) {
			t := data.Topics[i]
			return []any{t.Slug, t.Description, t.ImgURL}, nil
		}))
	if err != nil {
		return fmt.Errorf("insert topics: %w", err)
	}
	log.Info("seeded topics", zap.Int64("rows", n))

	n, err = tx.CopyFrom(ctx, pgx.Identifier{"users"},
		[]string{"username", "name", "avatar_url"},
		pgx.CopyFromSlice(len(data.Users), func(i int) ([]any, error) {
			u := data.Users[i]
			return []any{u.Username, u.Name, u.AvatarURL}, nil
		}))
	if err != nil {
		return fmt.Errorf("insert users: %w", err)
	}
	log.Info("seeded users", zap.Int64("rows", n))

	ref, err := insertArticles(ctx, tx, data.Articles)
	if err != nil {
		return err
	}
	log.Info("seeded articles", zap.Int("rows", len(ref)))

	rows, err := commentRows(data.Comments, ref)
	if err != nil {
		return err
	}
	n, err = tx.CopyFrom(ctx, pgx.Identifier{"comments"},
		[]string{"article_id", "body", "votes", "author", "created_at"},
		pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("insert comments: %w", err)
	}
	log.Info("seeded comments", zap.Int64("rows", n))
	return nil
}

const insertArticleSQL = `INSERT INTO articles (title, topic, author, body, created_at, votes, article_img_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING article_id, title`

// insertArticles inserts in file order so ids follow the data file.
func insertArticles(ctx context.Context, tx pgx.Tx, articles []ArticleRow) (ArticleRef, error) {
	batch := &pgx.Batch{}
	for _, a := range articles {
		batch.Queue(insertArticleSQL,
			a.Title, a.Topic, a.Author, a.Body, ConvertTimestamp(a.CreatedAt), a.Votes, a.ArticleImgURL)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	ref := make(ArticleRef, len(articles))
	for range articles {
		var (
			id    int64
			title string
		)
		if err := br.QueryRow().Scan(&id, &title); err != nil {
			return nil, fmt.Errorf("insert article: %w", err)
		}
		if _, dup := ref[title]; dup {
			return nil, fmt.Errorf("insert article: duplicate title %q", title)
		}
		ref[title] = id
	}
	return ref, br.Close()
}

func commentRows(comments []CommentRow, ref ArticleRef) ([][]any, error) {
	rows := make([][]any, 0, len(comments))
	for i, c := range comments {
		id, ok := ref[c.ArticleTitle]
		if !ok {
			return nil, fmt.Errorf("comment %d: no article titled %q", i, c.ArticleTitle)
		}
		rows = append(rows, []any{id, c.Body, c.Votes, c.Author, ConvertTimestamp(c.CreatedAt)})
	}
	return rows, nil
}
