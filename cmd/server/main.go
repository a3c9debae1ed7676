package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anoa.com/nftmarketplace/internal/bootstrap"
	"anoa.com/nftmarketplace/internal/config"
	"anoa.com/nftmarketplace/internal/server"
	"anoa.com/nftmarketplace/pkg/database"
	"anoa.com/nftmarketplace/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not up yet
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(logger.Config{
		Debug:     cfg.IsDevelopment(),
		SentryDSN: cfg.SentryDSN,
		Tags:      map[string]string{"service": "nft-marketplace-api", "env": cfg.AppEnv},
	}); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync(2 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DB)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error(err)
		}
	}()

	if err := bootstrap.Migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	if cfg.IsDevelopment() {
		if err := bootstrap.SeedAdminUser(db); err != nil {
			logger.Fatal("failed to seed admin user", zap.Error(err))
		}
	}

	redisClient := connectRedis(ctx, cfg.RedisURL)
	if redisClient != nil {
		defer redisClient.Close()
	}

	srv, err := server.NewServer(ctx, cfg, db, redisClient)
	if err != nil {
		logger.Fatal("failed to build server", zap.Error(err))
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error(err)
		return
	}
	logger.Info("server stopped")
}

// connectRedis returns nil when REDIS_URL is unset or unreachable.
func connectRedis(ctx context.Context, url string) *redis.Client {
	if url == "" {
		logger.Warn("REDIS_URL not set, running without cache and rate limiting")
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		logger.Warn("invalid REDIS_URL, running without redis", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, running without redis", zap.Error(err))
		_ = client.Close()
		return nil
	}
	return client
}
