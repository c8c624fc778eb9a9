package handlers

import (
	"net/http"

	"ncnews/internal/models"
	"ncnews/internal/services"
	"ncnews/internal/utils/helpers"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

type articleResponse struct {
	Article *models.Article `json:"article"`
}

type articlesResponse struct {
	Articles []models.Article `json:"articles"`
	Msg      string           `json:"msg,omitempty"`
}

// GetByID
// @Summary      Get an article
// @Description  Returns a single article without comment_count
// @Tags         articles
// @Produce      json
// @Param        article_id  path      int  true  "Article ID"
// @Success      200  {object}  handlers.articleResponse
// @Failure      400  {object}  helpers.MessageResponse
// @Failure      404  {object}  helpers.MessageResponse
// @Router       /api/articles/{article_id} [get]
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	article, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, articleResponse{Article: article})
}

// GetAll
// @Summary      List articles
// @Description  Unknown sort_by/order values fall back to created_at/DESC; an unknown topic is ignored
// @Tags         articles
// @Produce      json
// @Param        sort_by  query     string  false  "Sort column"  Enums(article_id, title, topic, author, created_at, body, votes, article_img_url)
// @Param        order    query     string  false  "asc or desc (any case)"
// @Param        topic    query     string  false  "Topic slug"
// @Success      200  {object}  handlers.articlesResponse
// @Failure      500  {object}  helpers.MessageResponse
// @Router       /api/articles [get]
func (h *ArticleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := models.ArticleListParams{
		SortBy: q.Get("sort_by"),
		Order:  q.Get("order"),
		Topic:  q.Get("topic"),
	}

	articles, err := h.svc.List(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := articlesResponse{Articles: articles}
	if len(articles) == 0 {
		resp.Articles = []models.Article{}
		resp.Msg = "No articles found"
	}
	helpers.JSON(w, http.StatusOK, resp)
}

// UpdateVotes
// @Summary      Adjust article votes
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article_id  path      int                        true  "Article ID"
// @Param        body        body      models.PatchVotesRequest   true  "Vote delta"
// @Success      200  {object}  handlers.articleResponse
// @Failure      400  {object}  helpers.MessageResponse
// @Failure      404  {object}  helpers.MessageResponse
// @Router       /api/articles/{article_id} [patch]
func (h *ArticleHandler) UpdateVotes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.PatchVotesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	article, err := h.svc.UpdateVotes(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, articleResponse{Article: article})
}
