package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"ncnews/internal/apperr"
	"ncnews/internal/logger"
	"ncnews/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// writeError sends the response apperr.Resolve picks for err. Unclassified
// errors are logged in full since the client only sees a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := apperr.Resolve(err)
	log := logger.WithCtx(r.Context())

	if resp.Status >= http.StatusInternalServerError {
		log.Error("unhandled error",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	} else {
		log.Debug("request failed",
			zap.String("kind", resp.Kind.String()),
			zap.Int("status", resp.Status),
			zap.Error(err),
		)
	}

	helpers.Message(w, resp.Status, resp.Msg)
}

// pathID parses an id path variable. Ids are int4 in the store, so anything
// outside that range is rejected here like any other malformed id.
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, apperr.InvalidInput(name, err)
	}
	return id, nil
}

const maxBodyBytes = 1 << 20

// decodeJSON decodes the request body into v. An empty body leaves v zeroed
// so that field validation reports what is missing.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.As(err, &tooLarge):
			return &apperr.Error{
				Kind:   apperr.KindValidation,
				Status: http.StatusRequestEntityTooLarge,
				Msg:    "Request body too large!",
				Err:    err,
			}
		}
		return apperr.InvalidInput("request body", err)
	}
	return nil
}
