package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"kinohub/database"
	"kinohub/internal/api/handler"
	"kinohub/internal/api/middleware"
	"kinohub/internal/api/repository"
	"kinohub/internal/api/service"
	"kinohub/internal/cache"
	"kinohub/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	statsCache, err := cache.NewStatsCache(cfg.RedisURL, time.Duration(cfg.CacheTTL)*time.Second, logger)
	if err != nil {
		logger.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	defer statsCache.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := service.NewUserService(userRepo)
	statsService := service.NewStatsService(ratingRepo, likeRepo, statsCache)
	movieService := service.NewMovieService(movieRepo, statsService)
	commentService := service.NewCommentService(commentRepo, movieRepo, statsService)
	ratingService := service.NewRatingService(ratingRepo, movieRepo, statsService)
	reviewService := service.NewReviewService(reviewRepo, movieRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, movieRepo)
	likeService := service.NewLikeService(likeRepo, movieRepo, commentRepo, statsService)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	movieHandler := handler.NewMovieHandler(movieService)
	commentHandler := handler.NewCommentHandler(commentService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	likeHandler := handler.NewLikeHandler(likeService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	// Auth endpoints sit behind a per-IP limiter to slow credential stuffing.
	authGroup := v1.Group("/auth")
	authGroup.Use(middleware.RateLimit(rate.Limit(float64(cfg.AuthRatePerMinute)/60.0), cfg.AuthRateBurst))
	authHandler.RegisterRoutes(authGroup)

	public := v1.Group("")
	movieHandler.RegisterPublicRoutes(public)
	commentHandler.RegisterPublicRoutes(public)
	ratingHandler.RegisterPublicRoutes(public)
	reviewHandler.RegisterPublicRoutes(public)

	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(authService))
	userHandler.RegisterRoutes(authed)
	commentHandler.RegisterRoutes(authed)
	ratingHandler.RegisterRoutes(authed)
	reviewHandler.RegisterRoutes(authed)
	favoriteHandler.RegisterRoutes(authed)
	likeHandler.RegisterRoutes(authed)

	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authService), middleware.RequireAdmin())
	movieHandler.RegisterAdminRoutes(admin)

	// Expired refresh tokens accumulate forever otherwise.
	cleanupDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := refreshTokenRepo.DeleteExpired(); err != nil {
					logger.Warn("refresh token cleanup failed", "error", err)
				}
			case <-cleanupDone:
				return
			}
		}
	}()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	close(cleanupDone)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// requestLogger logs one line per request with latency and status.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
