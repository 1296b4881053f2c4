package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/irinaLuta25/creative-writing-platform/internal/config"
	"github.com/irinaLuta25/creative-writing-platform/internal/database"
	"github.com/irinaLuta25/creative-writing-platform/internal/handlers"
	mw "github.com/irinaLuta25/creative-writing-platform/internal/middleware"
	"github.com/irinaLuta25/creative-writing-platform/internal/repository"
	"github.com/irinaLuta25/creative-writing-platform/internal/routes"
	"github.com/irinaLuta25/creative-writing-platform/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := config.AppConfig.Env
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting creative writing platform API")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logger.Info().Msg("Database migrations complete")

	users := repository.NewUserRepository(db)
	pieces := repository.NewPieceRepository(db)
	challenges := repository.NewChallengeRepository(db)
	comments := repository.NewCommentRepository(db)

	authHandler := handlers.NewAuthHandler(users)
	userHandler := handlers.NewUserHandler(users)
	pieceHandler := handlers.NewPieceHandler(pieces, users, challenges)
	challengeHandler := handlers.NewChallengeHandler(challenges, pieces)
	commentHandler := handlers.NewCommentHandler(comments, pieces, users)

	r := gin.New()
	r.Use(mw.LoggingMiddleware())
	r.Use(mw.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(mw.CORSMiddleware())

	api := r.Group("/api")
	{
		routes.RegisterUserRoutes(api, authHandler, userHandler)
		routes.RegisterPieceRoutes(api, pieceHandler, commentHandler, pieces, comments)
		routes.RegisterChallengeRoutes(api, challengeHandler)
	}

	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		status := "ok"
		if dbStatus != "ok" {
			status = "degraded"
		}

		c.JSON(http.StatusOK, gin.H{
			"status": status,
			"checks": gin.H{"database": dbStatus},
		})
	})

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
