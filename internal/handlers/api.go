package handlers

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"ncnews/internal/utils/helpers"
)

//go:embed endpoints.json
var endpointsJSON []byte

type endpointsResponse struct {
	Endpoints json.RawMessage `json:"endpoints"`
}

// GetAPI
// @Summary      API documentation
// @Description  Describes every available endpoint
// @Tags         api
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api [get]
func GetAPI(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, endpointsResponse{Endpoints: endpointsJSON})
}

// EndpointNotFound answers every request no route matched.
func EndpointNotFound(w http.ResponseWriter, r *http.Request) {
	helpers.Message(w, http.StatusNotFound, "Endpoint not found!")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	helpers.Message(w, http.StatusMethodNotAllowed, "Method not allowed!")
}
