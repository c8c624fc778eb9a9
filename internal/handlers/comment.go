package handlers

import (
	"fmt"
	"net/http"

	"ncnews/internal/models"
	"ncnews/internal/services"
	"ncnews/internal/utils/helpers"
)

type CommentHandler struct {
	svc services.CommentService
}

func NewCommentHandler(svc services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

type commentResponse struct {
	Comment *models.Comment `json:"comment"`
}

type commentsResponse struct {
	Comments []models.Comment `json:"comments"`
	Msg      string           `json:"msg,omitempty"`
}

// GetByArticle
// @Summary      List comments of an article
// @Description  Most recent first
// @Tags         comments
// @Produce      json
// @Param        article_id  path      int  true  "Article ID"
// @Success      200  {object}  handlers.commentsResponse
// @Failure      400  {object}  helpers.MessageResponse
// @Failure      404  {object}  helpers.MessageResponse
// @Router       /api/articles/{article_id}/comments [get]
func (h *CommentHandler) GetByArticle(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathID(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	comments, err := h.svc.ListByArticle(r.Context(), articleID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := commentsResponse{Comments: comments}
	if len(comments) == 0 {
		resp.Comments = []models.Comment{}
		resp.Msg = fmt.Sprintf("No comments found for article %d", articleID)
	}
	helpers.JSON(w, http.StatusOK, resp)
}

// Create
// @Summary      Post a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        article_id  path      int                         true  "Article ID"
// @Param        body        body      models.PostCommentRequest   true  "Comment"
// @Success      201  {object}  handlers.commentResponse
// @Failure      400  {object}  helpers.MessageResponse
// @Failure      404  {object}  helpers.MessageResponse
// @Router       /api/articles/{article_id}/comments [post]
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathID(r, "article_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.PostCommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.svc.Create(r.Context(), articleID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, commentResponse{Comment: comment})
}

// Delete
// @Summary      Delete a comment
// @Tags         comments
// @Param        comment_id  path  int  true  "Comment ID"
// @Success      204
// @Failure      400  {object}  helpers.MessageResponse
// @Failure      404  {object}  helpers.MessageResponse
// @Router       /api/comments/{comment_id} [delete]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	helpers.NoContent(w)
}
