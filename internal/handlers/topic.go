package handlers

import (
	"net/http"

	"ncnews/internal/models"
	"ncnews/internal/services"
	"ncnews/internal/utils/helpers"
)

type TopicHandler struct {
	svc services.TopicService
}

func NewTopicHandler(svc services.TopicService) *TopicHandler {
	return &TopicHandler{svc: svc}
}

type topicsResponse struct {
	Topics []models.Topic `json:"topics"`
}

// GetAll
// @Summary      List topics
// @Tags         topics
// @Produce      json
// @Success      200  {object}  handlers.topicsResponse
// @Failure      500  {object}  helpers.MessageResponse
// @Router       /api/topics [get]
func (h *TopicHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if topics == nil {
		topics = []models.Topic{}
	}
	helpers.JSON(w, http.StatusOK, topicsResponse{Topics: topics})
}
