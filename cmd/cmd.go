package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tweety-backend/internal/config"
	"tweety-backend/internal/handlers"
	"tweety-backend/internal/identity"
	"tweety-backend/internal/metrics"
	"tweety-backend/internal/middleware"
	"tweety-backend/internal/migrations"
	"tweety-backend/internal/repository"
	"tweety-backend/internal/services"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Connect to database
	db, err := pgxpool.New(context.Background(), cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Database connection established")

	// Apply migrations
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	// Initialize repositories
	tweetRepo := repository.NewTweetRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	// Initialize identity provider client
	provider := identity.New(cfg.Identity.Secret, cfg.Identity.BaseURL, cfg.Identity.APIKey)

	// Initialize services
	tweetService := services.NewTweetService(tweetRepo, profileRepo, provider)
	profileService := services.NewProfileService(profileRepo, tweetRepo)
	chatService := services.NewChatService(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(provider, cfg.Client)
	tweetHandler := handlers.NewTweetHandler(tweetService, provider)
	commentHandler := handlers.NewCommentHandler(tweetService, provider)
	profileHandler := handlers.NewProfileHandler(profileService, provider)
	chatHandler := handlers.NewChatHandler(chatService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)
	r.Use(metrics.Middleware)

	// Routes. Most endpoints carry the bearer credential in the request
	// body; only the chat relay takes it from the Authorization header.
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/metrics", metrics.Handler().ServeHTTP)
	r.Get("/firebase-config", authHandler.ClientConfig)
	r.Post("/check-user-login", authHandler.CheckUserLogin)
	r.Post("/user-new-post", tweetHandler.CreateTweet)
	r.Post("/get-user-tweets", tweetHandler.GetUserTweets)
	r.Post("/all-users-tweets", tweetHandler.AllUsersTweets)
	r.Post("/like-or-dislike-tweet", tweetHandler.ToggleLike)
	r.Post("/delete-post-by-id", tweetHandler.DeletePost)
	r.Post("/post-tweet-comment", commentHandler.PostComment)
	r.Post("/get-tweet-comments", commentHandler.GetComments)
	r.Post("/get-user-profile", profileHandler.GetProfile)
	r.Post("/save-user-profile", profileHandler.SaveProfile)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(provider))
		r.Post("/gemini-chat", chatHandler.Chat)
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// migrate applies the embedded schema migrations
func migrate(pool *pgxpool.Pool) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
