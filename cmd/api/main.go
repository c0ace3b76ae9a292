package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/talait/translate-api/internal/config"
	"github.com/talait/translate-api/internal/crypto"
	"github.com/talait/translate-api/internal/handler"
	"github.com/talait/translate-api/internal/middleware"
	"github.com/talait/translate-api/internal/repository"
	"github.com/talait/translate-api/internal/service"
	"github.com/talait/translate-api/internal/upstream"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := repository.NewDB(ctx, cfg.Database.DSN())
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.Migrate(ctx, db); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	tokens, err := crypto.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.TTL())
	if err != nil {
		slog.Error("invalid token configuration", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokens)
	authHandler := handler.NewAuthHandler(authService)

	translator := upstream.NewClient(cfg.Upstream.Token, cfg.Upstream.Timeout())
	translateService := service.NewTranslateService(translator)
	translateHandler := handler.NewTranslateHandler(translateService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", authHandler.HandleRoot)
	r.Get("/users", authHandler.HandleListUsers)
	r.Post("/register", authHandler.HandleRegister)
	r.Post("/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(tokens))
		r.Post("/translate", translateHandler.HandleTranslate)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.ServerPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
