package middleware

import (
	"net/http"

	"ncnews/internal/reqctx"

	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one, stores it in
// the request context and echoes it back.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(HeaderRequestID)
		if rid == "" || len(rid) > 128 {
			rid = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, rid)
		next.ServeHTTP(w, r.WithContext(reqctx.WithRequestID(r.Context(), rid)))
	})
}
