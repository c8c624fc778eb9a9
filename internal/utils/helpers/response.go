package helpers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body of every error and of informational replies.
type MessageResponse struct {
	Msg string `json:"msg"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		return
	}
}

func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageResponse{Msg: msg})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
