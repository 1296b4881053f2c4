package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/irinaLuta25/creative-writing-platform/internal/repository"
	"github.com/irinaLuta25/creative-writing-platform/pkg/errors"
)

// RequirePieceOwner loads the piece addressed by the path id and verifies the
// acting user is its author. The loaded piece is stashed in the context so
// handlers do not fetch it twice.
func RequirePieceOwner(pieces *repository.PieceRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		piece, err := pieces.FindByID(c.Param("id"))
		if err != nil {
			c.Error(errors.Internal("Failed to fetch piece"))
			c.Abort()
			return
		}
		if piece == nil {
			c.Error(errors.NotFound("Piece not found"))
			c.Abort()
			return
		}

		if piece.Author.ID == "" || piece.Author.ID != c.GetString("userId") {
			c.Error(errors.Forbidden("You are not allowed to modify this piece"))
			c.Abort()
			return
		}

		c.Set("piece", piece)
		c.Next()
	}
}

// RequireCommentOwner is the same check keyed by (piece id, comment id).
func RequireCommentOwner(comments *repository.CommentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		comment, err := comments.FindByID(c.Param("id"), c.Param("commentId"))
		if err != nil {
			c.Error(errors.Internal("Failed to fetch comment"))
			c.Abort()
			return
		}
		if comment == nil {
			c.Error(errors.NotFound("Comment not found"))
			c.Abort()
			return
		}

		if comment.Author.ID == "" || comment.Author.ID != c.GetString("userId") {
			c.Error(errors.Forbidden("You are not allowed to modify this comment"))
			c.Abort()
			return
		}

		c.Set("comment", comment)
		c.Next()
	}
}
