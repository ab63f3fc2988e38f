package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"minishop/internal/auth"
	"minishop/internal/config"
	"minishop/internal/metrics"
	"minishop/internal/repository"
)

type application struct {
	cfg     *config.Config
	logger  *logrus.Logger
	store   Store
	tokens  *auth.TokenManager
	metrics *metrics.ServerMetrics
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET environment variable not found")
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	repo, err := repository.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
	cancel()
	if err != nil {
		logger.WithError(err).Fatal("open mongodb")
	}
	logger.WithField("database", cfg.MongoDatabase).Info("connected to mongodb")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = repo.EnsureIndexes(ctx)
	cancel()
	if err != nil {
		logger.WithError(err).Fatal("ensure indexes")
	}

	app := &application{
		cfg:     cfg,
		logger:  logger,
		store:   repo,
		tokens:  auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL),
		metrics: metrics.New("minishop"),
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      app.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.Addr).Info("starting api server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		logger.WithError(err).Fatal("server stopped")
	case <-shutdownCtx.Done():
	}

	logger.Info("shutting down")
	ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("shutdown server")
	}
	if err := repo.Close(ctx); err != nil {
		logger.WithError(err).Error("close mongodb")
	}
}
