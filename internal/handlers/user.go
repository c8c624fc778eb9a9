package handlers

import (
	"net/http"

	"ncnews/internal/models"
	"ncnews/internal/services"
	"ncnews/internal/utils/helpers"
)

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type usersResponse struct {
	Users []models.User `json:"users"`
}

// GetAll
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  handlers.usersResponse
// @Failure      500  {object}  helpers.MessageResponse
// @Router       /api/users [get]
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	helpers.JSON(w, http.StatusOK, usersResponse{Users: users})
}
