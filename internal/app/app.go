package app

import (
	"fmt"

	"ncnews/internal/config"
	"ncnews/internal/db"
	"ncnews/internal/handlers"
	"ncnews/internal/logger"
	"ncnews/internal/middleware"
	"ncnews/internal/repository"
	"ncnews/internal/routes"
	"ncnews/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// InitApp connects to the database and wires every layer into a router.
// The returned cleanup closes the pool.
func InitApp(cfg *config.Config) (*mux.Router, func(), error) {
	pool, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Log.Info("database connected", zap.String("dsn", cfg.GetDSNSafe()))

	if cfg.AutoMigrate {
		if err := db.Migrate(pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("apply migrations: %w", err)
		}
		logger.Log.Info("migrations applied")
	}

	// Repositories
	topicRepo := repository.NewTopicRepo(pool)
	userRepo := repository.NewUserRepo(pool)
	articleRepo := repository.NewArticleRepo(pool)
	commentRepo := repository.NewCommentRepo(pool)

	// Services
	topicSvc := services.NewTopicService(topicRepo)
	userSvc := services.NewUserService(userRepo)
	articleSvc := services.NewArticleService(articleRepo, topicRepo)
	commentSvc := services.NewCommentService(commentRepo, articleRepo, userRepo)

	// Handlers
	topicH := handlers.NewTopicHandler(topicSvc)
	userH := handlers.NewUserHandler(userSvc)
	articleH := handlers.NewArticleHandler(articleSvc)
	commentH := handlers.NewCommentHandler(commentSvc)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	router := mux.NewRouter()
	routes.InitRoutes(router, limiter, topicH, articleH, commentH, userH)

	return router, pool.Close, nil
}
