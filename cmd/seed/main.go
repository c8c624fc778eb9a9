package main

import (
	"context"
	"flag"
	"os"

	"ncnews/internal/config"
	"ncnews/internal/db"
	"ncnews/internal/logger"
	"ncnews/internal/seed"

	"go.uber.org/zap"
)

// Command seed resets the database and loads a bundled data set, or the JSON
// files in -dir when given. The data set defaults to "test" when ENV=test and
// "development" otherwise.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Fatal("failed to load config", zap.Error(err))
	}
	if err := logger.InitLogger(cfg); err != nil {
		logger.Log.Fatal("failed to init logger", zap.Error(err))
	}
	defer logger.Log.Sync()

	defaultSet := "development"
	if cfg.Env == "test" {
		defaultSet = "test"
	}
	dataset := flag.String("data", defaultSet, "bundled data set to load (test or development)")
	dir := flag.String("dir", "", "directory holding topics.json, users.json, articles.json and comments.json")
	flag.Parse()

	var data *seed.Data
	if *dir != "" {
		data, err = seed.LoadData(os.DirFS(*dir), ".")
		*dataset = *dir
	} else {
		data, err = seed.Dataset(*dataset)
	}
	if err != nil {
		logger.Log.Fatal("failed to load data set", zap.String("data", *dataset), zap.Error(err))
	}

	pool, err := db.NewPostgresConnection(cfg)
	if err != nil {
		logger.Log.Fatal("failed to connect", zap.Error(err))
	}
	defer pool.Close()

	if err := seed.Seed(context.Background(), pool, data); err != nil {
		logger.Log.Fatal("seeding failed", zap.Error(err))
	}
	logger.Log.Info("seed complete", zap.String("data", *dataset), zap.String("db", cfg.DbName))
}
