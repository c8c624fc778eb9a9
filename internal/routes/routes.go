package routes

import (
	"net/http"

	"ncnews/internal/handlers"
	"ncnews/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// InitRoutes mounts the API on router. limiter may be nil, in which case
// requests are not throttled.
func InitRoutes(
	router *mux.Router,
	limiter *middleware.RateLimiter,
	topicH *handlers.TopicHandler,
	articleH *handlers.ArticleHandler,
	commentH *handlers.CommentHandler,
	userH *handlers.UserHandler,
) {
	router.Use(middleware.RequestID, middleware.Recoverer, middleware.Logging)

	// mux skips router middleware for its fallback handlers.
	router.NotFoundHandler = withBase(http.HandlerFunc(handlers.EndpointNotFound))
	router.MethodNotAllowedHandler = withBase(http.HandlerFunc(handlers.MethodNotAllowed))

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.Metrics)
	if limiter != nil {
		api.Use(limiter.Middleware)
	}

	api.HandleFunc("", handlers.GetAPI).Methods(http.MethodGet)
	api.HandleFunc("/topics", topicH.GetAll).Methods(http.MethodGet)

	api.HandleFunc("/articles", articleH.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/articles/{article_id}", articleH.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/articles/{article_id}", articleH.UpdateVotes).Methods(http.MethodPatch)

	api.HandleFunc("/articles/{article_id}/comments", commentH.GetByArticle).Methods(http.MethodGet)
	api.HandleFunc("/articles/{article_id}/comments", commentH.Create).Methods(http.MethodPost)
	api.HandleFunc("/comments/{comment_id}", commentH.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/users", userH.GetAll).Methods(http.MethodGet)
}

func withBase(h http.Handler) http.Handler {
	return middleware.RequestID(middleware.Recoverer(middleware.Logging(h)))
}
