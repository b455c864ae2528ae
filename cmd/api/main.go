// Command api starts the study dashboard HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Prathamesh-chougale-17/status-study/internal/auth"
	"github.com/Prathamesh-chougale-17/status-study/internal/config"
	"github.com/Prathamesh-chougale-17/status-study/internal/db"
	"github.com/Prathamesh-chougale-17/status-study/internal/handlers"
	"github.com/Prathamesh-chougale-17/status-study/internal/store/mongodb"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	logger.Info("connected to MongoDB", zap.String("database", cfg.MongoDB))

	st := mongodb.New(client.Database(cfg.MongoDB))
	svc := auth.New(st.Identities, st.Sessions, cfg.AdminEmail, cfg.SessionSecret)

	router := handlers.NewRouter(handlers.Deps{
		Auth:          svc,
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		Topics:        st.Topics,
		Resources:     st.Resources,
		Subtopics:     st.Subtopics,
		Tasks:         st.Tasks,
		Progress:      st.Progress,
		Suggestions:   st.Suggestions,
		Log:           logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := db.Disconnect(client); err != nil {
		logger.Error("failed to disconnect from MongoDB", zap.Error(err))
		os.Exit(1)
	}
}
