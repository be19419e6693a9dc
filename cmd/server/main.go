package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/config"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/api/handler"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/api/router"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/repository"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/service"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/database"
	applogger "github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/logger"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/redis"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/session"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting attendance server",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	logger.Info("database connected")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("obtain sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// Redis is optional. Without it course listings skip the cache.
	cache, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, course cache disabled", zap.Error(err))
		cache = nil
	}

	sess := session.NewManager(&cfg.Session)

	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, cache, logger)
	h := handler.NewHandler(svc, sess)

	engine := router.Setup(cfg, h, sess, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if cache != nil {
		cache.Close()
	}

	logger.Info("server stopped")
}
