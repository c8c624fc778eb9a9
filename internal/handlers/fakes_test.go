package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ncnews/internal/apperr"
	"ncnews/internal/models"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type fakeArticleService struct {
	getByID     func(ctx context.Context, id int64) (*models.Article, error)
	list        func(ctx context.Context, p models.ArticleListParams) ([]models.Article, error)
	updateVotes func(ctx context.Context, id int64, req models.PatchVotesRequest) (*models.Article, error)
}

func (f *fakeArticleService) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	return f.getByID(ctx, id)
}

func (f *fakeArticleService) List(ctx context.Context, p models.ArticleListParams) ([]models.Article, error) {
	return f.list(ctx, p)
}

func (f *fakeArticleService) UpdateVotes(ctx context.Context, id int64, req models.PatchVotesRequest) (*models.Article, error) {
	return f.updateVotes(ctx, id, req)
}

// fakeCommentService keeps comments in memory so delete-twice behaves like
// the real store.
type fakeCommentService struct {
	articles map[int64]bool
	comments map[int64]models.Comment
	nextID   int64
}

func newFakeCommentService() *fakeCommentService {
	return &fakeCommentService{
		articles: map[int64]bool{1: true, 2: true},
		comments: map[int64]models.Comment{},
		nextID:   1,
	}
}

func (f *fakeCommentService) ListByArticle(_ context.Context, articleID int64) ([]models.Comment, error) {
	if !f.articles[articleID] {
		return nil, apperr.NotFound("Article %d not found!", articleID)
	}
	var out []models.Comment
	for _, c := range f.comments {
		if c.ArticleID == articleID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentService) Create(_ context.Context, articleID int64, req models.PostCommentRequest) (*models.Comment, error) {
	if req.Username == "" || req.Body == "" {
		return nil, apperr.Validation("Missing required fields: username, body")
	}
	c := models.Comment{ID: f.nextID, ArticleID: articleID, Author: req.Username, Body: req.Body}
	f.comments[c.ID] = c
	f.nextID++
	return &c, nil
}

func (f *fakeCommentService) Delete(_ context.Context, id int64) error {
	if _, ok := f.comments[id]; !ok {
		return apperr.NotFound("Comment %d not found!", id)
	}
	delete(f.comments, id)
	return nil
}

type fakeTopicService struct {
	topics []models.Topic
	err    error
}

func (f *fakeTopicService) List(context.Context) ([]models.Topic, error) { return f.topics, f.err }

type fakeUserService struct {
	users []models.User
	err   error
}

func (f *fakeUserService) List(context.Context) ([]models.User, error) { return f.users, f.err }

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func newArticleRouter(svc *fakeArticleService) *mux.Router {
	h := NewArticleHandler(svc)
	r := mux.NewRouter()
	r.HandleFunc("/api/articles", h.GetAll).Methods(http.MethodGet)
	r.HandleFunc("/api/articles/{article_id}", h.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/api/articles/{article_id}", h.UpdateVotes).Methods(http.MethodPatch)
	return r
}

func newCommentRouter(svc *fakeCommentService) *mux.Router {
	h := NewCommentHandler(svc)
	r := mux.NewRouter()
	r.HandleFunc("/api/articles/{article_id}/comments", h.GetByArticle).Methods(http.MethodGet)
	r.HandleFunc("/api/articles/{article_id}/comments", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/comments/{comment_id}", h.Delete).Methods(http.MethodDelete)
	return r
}
