package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/irinaLuta25/creative-writing-platform/internal/handlers"
	"github.com/irinaLuta25/creative-writing-platform/internal/middleware"
	"github.com/irinaLuta25/creative-writing-platform/internal/repository"
)

// RegisterPieceRoutes wires pieces and their comment sub-resource. Comment
// paths reuse the :id param for the parent piece.
func RegisterPieceRoutes(
	r gin.IRouter,
	piecesHandler *handlers.PieceHandler,
	commentsHandler *handlers.CommentHandler,
	pieces *repository.PieceRepository,
	comments *repository.CommentRepository,
) {
	piece := r.Group("/piece")
	{
		piece.GET("", piecesHandler.List)
		piece.GET("/slug/:slug", piecesHandler.GetBySlug)
		piece.GET("/:id", piecesHandler.GetByID)

		piece.POST("", middleware.AuthMiddleware(), piecesHandler.Create)
		piece.PUT("/:id", middleware.AuthMiddleware(), middleware.RequirePieceOwner(pieces), piecesHandler.Update)
		piece.DELETE("/:id", middleware.AuthMiddleware(), middleware.RequirePieceOwner(pieces), piecesHandler.Delete)

		piece.GET("/:id/comments", commentsHandler.ListForPiece)
		piece.POST("/:id/comments", middleware.AuthMiddleware(), commentsHandler.Create)
		piece.DELETE("/:id/comments/:commentId",
			middleware.AuthMiddleware(),
			middleware.RequireCommentOwner(comments),
			commentsHandler.Delete)
	}
}
