package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/irinaLuta25/creative-writing-platform/internal/handlers"
	"github.com/irinaLuta25/creative-writing-platform/internal/middleware"
)

func RegisterChallengeRoutes(r gin.IRouter, challenges *handlers.ChallengeHandler) {
	challenge := r.Group("/challenge")
	{
		challenge.GET("", challenges.List)
		challenge.GET("/:id", challenges.GetByID)
		challenge.GET("/:id/pieces", challenges.GetPieces)

		admin := challenge.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
		{
			admin.POST("", challenges.Create)
			admin.PUT("/:id", challenges.Update)
			admin.DELETE("/:id", challenges.Delete)
		}
	}
}
