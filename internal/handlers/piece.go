package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/irinaLuta25/creative-writing-platform/internal/models"
	"github.com/irinaLuta25/creative-writing-platform/internal/repository"
	"github.com/irinaLuta25/creative-writing-platform/internal/validation"
	"github.com/irinaLuta25/creative-writing-platform/pkg/logger"
	"github.com/irinaLuta25/creative-writing-platform/pkg/utils"
)

const excerptLength = 200

type PieceHandler struct {
	pieces     *repository.PieceRepository
	users      *repository.UserRepository
	challenges *repository.ChallengeRepository
}

func NewPieceHandler(
	pieces *repository.PieceRepository,
	users *repository.UserRepository,
	challenges *repository.ChallengeRepository,
) *PieceHandler {
	return &PieceHandler{pieces: pieces, users: users, challenges: challenges}
}

// List handles GET /api/piece
func (h *PieceHandler) List(c *gin.Context) {
	pieces, err := h.pieces.FindAll()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch pieces")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pieces"})
		return
	}
	c.JSON(http.StatusOK, pieces)
}

// GetByID handles GET /api/piece/:id
func (h *PieceHandler) GetByID(c *gin.Context) {
	piece, err := h.pieces.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch piece"})
		return
	}
	if piece == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Piece not found"})
		return
	}
	c.JSON(http.StatusOK, piece)
}

// GetBySlug handles GET /api/piece/slug/:slug
func (h *PieceHandler) GetBySlug(c *gin.Context) {
	piece, err := h.pieces.FindBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch piece"})
		return
	}
	if piece == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Piece not found"})
		return
	}
	c.JSON(http.StatusOK, piece)
}

// resolveChallenge validates the submission window and returns the immutable
// snapshot to embed. A nil snapshot with a non-empty message means the
// challenge cannot accept this piece.
func (h *PieceHandler) resolveChallenge(challengeID string, now time.Time) (*models.ChallengeSnapshot, string, error) {
	challenge, err := h.challenges.FindByID(challengeID)
	if err != nil {
		return nil, "", err
	}
	if challenge == nil {
		return nil, "Challenge not found", nil
	}
	if !challenge.Availability.IsActive {
		return nil, "Challenge is not active", nil
	}
	schedule := challenge.Availability.Schedule
	if schedule.StartsAt != nil && now.Before(*schedule.StartsAt) {
		return nil, "Challenge has not started yet", nil
	}
	if schedule.EndsAt != nil && now.After(*schedule.EndsAt) {
		return nil, "Challenge is closed", nil
	}
	return challenge.Snapshot(), "", nil
}

// Create handles POST /api/piece
func (h *PieceHandler) Create(c *gin.Context) {
	var input validation.CreatePieceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if errs := input.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	user, err := h.users.FindByEmail(c.GetString("email"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to resolve acting user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create piece"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	var (
		challengeID *string
		snapshot    *models.ChallengeSnapshot
	)
	if input.ChallengeID != "" {
		var reason string
		snapshot, reason, err = h.resolveChallenge(input.ChallengeID, time.Now())
		if err != nil {
			logger.Error().Err(err).Msg("Failed to fetch challenge")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create piece"})
			return
		}
		if snapshot == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": reason})
			return
		}
		challengeID = &snapshot.ID
	}

	body := input.Content.Body
	words := utils.WordCount(body)

	language := input.Content.Language
	if language == "" {
		language = "ro"
	}

	piece := models.Piece{
		ID:    utils.GenerateID(),
		Title: input.Title,
		Slug:  utils.NewSlug(input.Title),
		Content: models.PieceContent{
			Body:           body,
			Excerpt:        utils.Excerpt(body, excerptLength),
			Language:       language,
			ReadingTimeMin: utils.ReadingTime(words),
		},
		Classification: models.Classification{
			Genre: models.Genre{
				ID:   input.Classification.Genre.ID,
				Name: input.Classification.Genre.Name,
			},
			Tags: pq.StringArray(input.Classification.Tags),
		},
		Author:      user.Snapshot(),
		ChallengeID: challengeID,
		Challenge:   snapshot,
		Stats: models.PieceStats{
			Words:         words,
			CommentsCount: 0,
		},
		CommentsPreview: []models.CommentPreview{},
		CreatedBy:       user.ID,
	}

	if err := h.pieces.Create(&piece); err != nil {
		logger.Error().Err(err).Msg("Failed to create piece")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create piece"})
		return
	}

	// Best effort; the counter is approximate by design.
	if err := h.users.IncrementPiecesCount(user.ID, 1); err != nil {
		logger.Warn().Err(err).Str("user_id", user.ID).Msg("Failed to bump pieces count")
	}

	c.JSON(http.StatusCreated, piece)
}

// Update handles PUT /api/piece/:id. Runs behind RequirePieceOwner, which
// already loaded the piece into the context.
func (h *PieceHandler) Update(c *gin.Context) {
	pieceValue, _ := c.Get("piece")
	piece := pieceValue.(*models.Piece)

	var input validation.UpdatePieceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// The challenge association is frozen at creation.
	if input.HasChallengeChange() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Challenge association cannot be changed after creation"})
		return
	}

	if errs := input.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	patch := map[string]interface{}{}

	if input.Title != "" {
		patch["title"] = input.Title
		patch["slug"] = utils.NewSlug(input.Title)
	}

	if input.Content != nil && strings.TrimSpace(input.Content.Body) != "" {
		body := input.Content.Body
		words := utils.WordCount(body)
		patch["content_body"] = body
		patch["content_excerpt"] = utils.Excerpt(body, excerptLength)
		patch["content_reading_time_min"] = utils.ReadingTime(words)
		patch["stats_words"] = words
		if input.Content.Language != "" {
			patch["content_language"] = input.Content.Language
		}
	}

	if input.Classification != nil {
		patch["classification_genre_id"] = input.Classification.Genre.ID
		patch["classification_genre_name"] = input.Classification.Genre.Name
		patch["classification_tags"] = pq.StringArray(input.Classification.Tags)
	}

	if len(patch) == 0 {
		c.JSON(http.StatusOK, piece)
		return
	}

	updated, err := h.pieces.Update(piece.ID, patch)
	if err != nil {
		logger.Error().Err(err).Str("piece_id", piece.ID).Msg("Failed to update piece")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update piece"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/piece/:id. Hard delete; comments under the
// piece are left in place.
func (h *PieceHandler) Delete(c *gin.Context) {
	pieceValue, _ := c.Get("piece")
	piece := pieceValue.(*models.Piece)

	if err := h.pieces.Remove(piece.ID); err != nil {
		logger.Error().Err(err).Str("piece_id", piece.ID).Msg("Failed to delete piece")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete piece"})
		return
	}

	if err := h.users.IncrementPiecesCount(piece.Author.ID, -1); err != nil {
		logger.Warn().Err(err).Str("user_id", piece.Author.ID).Msg("Failed to bump pieces count")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Piece deleted"})
}
