package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/irinaLuta25/creative-writing-platform/internal/handlers"
	"github.com/irinaLuta25/creative-writing-platform/internal/middleware"
)

func RegisterUserRoutes(r gin.IRouter, auth *handlers.AuthHandler, users *handlers.UserHandler) {
	user := r.Group("/user")
	{
		user.POST("/register", middleware.AuthRateLimit(), auth.Register)
		user.POST("/login", middleware.AuthRateLimit(), auth.Login)

		me := user.Group("/me")
		me.Use(middleware.AuthMiddleware())
		{
			me.GET("", users.GetMe)
			me.PUT("", users.UpdateMe)
		}
	}
}
