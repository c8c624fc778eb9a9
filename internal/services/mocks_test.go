package services

import (
	"context"

	"ncnews/internal/models"
	"ncnews/internal/repository"
)

type mockArticleRepo struct {
	articles  map[int64]*models.Article
	listErr   error
	lastQuery repository.ArticleQuery
	listCalls int
}

func newMockArticleRepo(articles ...models.Article) *mockArticleRepo {
	m := &mockArticleRepo{articles: map[int64]*models.Article{}}
	for i := range articles {
		a := articles[i]
		m.articles[a.ID] = &a
	}
	return m
}

func (m *mockArticleRepo) GetByID(_ context.Context, id int64) (*models.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockArticleRepo) List(_ context.Context, q repository.ArticleQuery) ([]models.Article, error) {
	m.listCalls++
	m.lastQuery = q
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.Article, 0, len(m.articles))
	for _, a := range m.articles {
		if q.Topic == "" || a.Topic == q.Topic {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockArticleRepo) IncrementVotes(_ context.Context, id int64, delta int) (*models.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.Votes += delta
	cp := *a
	return &cp, nil
}

type mockTopicRepo struct {
	slugs     map[string]bool
	existsErr error
}

func (m *mockTopicRepo) List(_ context.Context) ([]models.Topic, error) {
	out := make([]models.Topic, 0, len(m.slugs))
	for s := range m.slugs {
		out = append(out, models.Topic{Slug: s})
	}
	return out, nil
}

func (m *mockTopicRepo) Exists(_ context.Context, slug string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.slugs[slug], nil
}

type mockUserRepo struct {
	users map[string]models.User
}

func (m *mockUserRepo) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

type mockCommentRepo struct {
	byArticle map[int64][]models.Comment
	nextID    int64
	createErr error
	created   []models.Comment
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{byArticle: map[int64][]models.Comment{}, nextID: 1}
}

func (m *mockCommentRepo) ListByArticle(_ context.Context, articleID int64) ([]models.Comment, error) {
	out := make([]models.Comment, 0)
	return append(out, m.byArticle[articleID]...), nil
}

func (m *mockCommentRepo) Create(_ context.Context, articleID int64, author, body string) (*models.Comment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	c := models.Comment{ID: m.nextID, ArticleID: articleID, Author: author, Body: body}
	m.nextID++
	m.byArticle[articleID] = append(m.byArticle[articleID], c)
	m.created = append(m.created, c)
	return &c, nil
}

func (m *mockCommentRepo) Delete(_ context.Context, id int64) (int64, error) {
	for aid, list := range m.byArticle {
		for i, c := range list {
			if c.ID == id {
				m.byArticle[aid] = append(list[:i], list[i+1:]...)
				return 1, nil
			}
		}
	}
	return 0, nil
}
