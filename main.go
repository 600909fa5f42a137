package main

import (
	"log"
	"os"
	"time"

	"figmaproxy/internal/api"
	"figmaproxy/internal/cache"
	"figmaproxy/internal/config"
	"figmaproxy/internal/figma"
	"figmaproxy/internal/redis"
	"figmaproxy/internal/service/gallery"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("FIGMAPROXY_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := newLogger(cfg.BasicConfig.LogFormat)
	defer logger.Sync()

	var store cache.Store = cache.NewMemoryStore(nil)
	if cfg.Redis.Host != "" {
		rdb, err := redis.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("create redis client", zap.Error(err))
		}
		defer rdb.Close()
		store = cache.NewRedisStore(rdb, logger)
		logger.Info("result cache backed by redis", zap.String("host", cfg.Redis.Host))
	}

	client := figma.NewClient(
		cfg.Figma.BaseURL,
		cfg.Figma.Token,
		time.Duration(cfg.Figma.RequestTimeoutSeconds)*time.Second,
		logger,
	)
	service := gallery.NewService(client, store, gallery.Options{
		TeamTTL:     time.Duration(cfg.Figma.TeamCacheTTLMinutes) * time.Minute,
		ProjectTTL:  time.Duration(cfg.Figma.ProjectCacheTTLMinutes) * time.Minute,
		Concurrency: cfg.Figma.EnrichConcurrency,
		ProjectID:   cfg.Figma.ProjectID,
		HasToken:    cfg.Figma.Token != "",
	}, logger)
	handlers := api.NewHandler(service, logger)

	router := gin.Default()
	handlers.RegisterRoutes(router)

	addr := cfg.BasicConfig.ServerAddress
	logger.Info("listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(format string) *zap.Logger {
	if format == "console" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("init logger: %v", err)
		}
		return logger
	}
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	return logger
}
