package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/irinaLuta25/creative-writing-platform/internal/models"
	"github.com/irinaLuta25/creative-writing-platform/internal/repository"
	"github.com/irinaLuta25/creative-writing-platform/internal/validation"
	"github.com/irinaLuta25/creative-writing-platform/pkg/logger"
	"github.com/irinaLuta25/creative-writing-platform/pkg/utils"
)

type CommentHandler struct {
	comments *repository.CommentRepository
	pieces   *repository.PieceRepository
	users    *repository.UserRepository
}

func NewCommentHandler(
	comments *repository.CommentRepository,
	pieces *repository.PieceRepository,
	users *repository.UserRepository,
) *CommentHandler {
	return &CommentHandler{comments: comments, pieces: pieces, users: users}
}

// ListForPiece handles GET /api/piece/:id/comments
func (h *CommentHandler) ListForPiece(c *gin.Context) {
	pieceID := c.Param("id")

	piece, err := h.pieces.FindByID(pieceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch piece"})
		return
	}
	if piece == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Piece not found"})
		return
	}

	comments, err := h.comments.FindAllForPiece(pieceID, repository.DefaultCommentLimit)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// Create handles POST /api/piece/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	pieceID := c.Param("id")

	var input validation.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if errs := input.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	piece, err := h.pieces.FindByID(pieceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch piece"})
		return
	}
	if piece == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Piece not found"})
		return
	}

	user, err := h.users.FindByEmail(c.GetString("email"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to resolve acting user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	mentions := input.Content.Mentions
	if mentions == nil {
		mentions = []string{}
	}

	comment := models.Comment{
		ID:      utils.GenerateID(),
		PieceID: pieceID,
		Author:  user.Snapshot(),
		Content: models.CommentContent{
			Text:     input.Content.Text,
			Mentions: pq.StringArray(mentions),
		},
		Moderation: models.CommentModeration{Status: models.ModerationVisible},
		CreatedBy:  user.ID,
	}

	if err := h.comments.Create(&comment); err != nil {
		logger.Error().Err(err).Msg("Failed to create comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	// Two separate writes; only the increment itself is atomic, so the
	// counter can drift if the process dies in between.
	if err := h.pieces.IncrementCommentsCount(pieceID, 1); err != nil {
		logger.Warn().Err(err).Str("piece_id", pieceID).Msg("Failed to bump comments count")
	}
	if err := h.users.IncrementCommentsCount(user.ID, 1); err != nil {
		logger.Warn().Err(err).Str("user_id", user.ID).Msg("Failed to bump comments count")
	}

	c.JSON(http.StatusCreated, comment)
}

// Delete handles DELETE /api/piece/:id/comments/:commentId. Runs behind
// RequireCommentOwner.
func (h *CommentHandler) Delete(c *gin.Context) {
	commentValue, _ := c.Get("comment")
	comment := commentValue.(*models.Comment)

	if err := h.comments.Remove(comment.PieceID, comment.ID); err != nil {
		logger.Error().Err(err).Str("comment_id", comment.ID).Msg("Failed to delete comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	if err := h.pieces.IncrementCommentsCount(comment.PieceID, -1); err != nil {
		logger.Warn().Err(err).Str("piece_id", comment.PieceID).Msg("Failed to bump comments count")
	}
	if err := h.users.IncrementCommentsCount(comment.Author.ID, -1); err != nil {
		logger.Warn().Err(err).Str("user_id", comment.Author.ID).Msg("Failed to bump comments count")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
