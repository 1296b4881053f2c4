package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/irinaLuta25/creative-writing-platform/internal/models"
	"github.com/irinaLuta25/creative-writing-platform/internal/repository"
	"github.com/irinaLuta25/creative-writing-platform/internal/validation"
	"github.com/irinaLuta25/creative-writing-platform/pkg/logger"
	"github.com/irinaLuta25/creative-writing-platform/pkg/utils"
)

type ChallengeHandler struct {
	challenges *repository.ChallengeRepository
	pieces     *repository.PieceRepository
}

func NewChallengeHandler(
	challenges *repository.ChallengeRepository,
	pieces *repository.PieceRepository,
) *ChallengeHandler {
	return &ChallengeHandler{challenges: challenges, pieces: pieces}
}

// List handles GET /api/challenge
func (h *ChallengeHandler) List(c *gin.Context) {
	challenges, err := h.challenges.FindAll()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch challenges")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenges"})
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// GetByID handles GET /api/challenge/:id
func (h *ChallengeHandler) GetByID(c *gin.Context) {
	challenge, err := h.challenges.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenge"})
		return
	}
	if challenge == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		return
	}
	c.JSON(http.StatusOK, challenge)
}

// GetPieces handles GET /api/challenge/:id/pieces
func (h *ChallengeHandler) GetPieces(c *gin.Context) {
	challengeID := c.Param("id")

	challenge, err := h.challenges.FindByID(challengeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenge"})
		return
	}
	if challenge == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		return
	}

	pieces, err := h.pieces.FindAllByChallengeID(challengeID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch challenge pieces")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenge pieces"})
		return
	}

	c.JSON(http.StatusOK, pieces)
}

// parseSchedule converts supplied ISO schedule strings to timestamps.
// startsAt defaults to now, endsAt stays open-ended.
func parseSchedule(availability *validation.AvailabilityInput, now time.Time) (models.ChallengeSchedule, []validation.FieldError) {
	schedule := models.ChallengeSchedule{StartsAt: &now}

	if availability == nil || availability.Schedule == nil {
		return schedule, nil
	}

	var errs []validation.FieldError

	if s := availability.Schedule.StartsAt; s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "availability.schedule.startsAt", Message: "startsAt must be an ISO 8601 date"})
		} else {
			schedule.StartsAt = &t
		}
	}

	if s := availability.Schedule.EndsAt; s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "availability.schedule.endsAt", Message: "endsAt must be an ISO 8601 date"})
		} else {
			schedule.EndsAt = &t
		}
	}

	return schedule, errs
}

// Create handles POST /api/challenge (admin only).
func (h *ChallengeHandler) Create(c *gin.Context) {
	var input validation.CreateChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	errs := input.Validate()

	schedule, scheduleErrs := parseSchedule(input.Availability, time.Now())
	errs = append(errs, scheduleErrs...)

	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	isActive := true
	if input.Availability != nil && input.Availability.IsActive != nil {
		isActive = *input.Availability.IsActive
	}

	challenge := models.Challenge{
		ID:    utils.GenerateID(),
		Title: input.Title,
		Slug:  utils.NewSlug(input.Title),
		Prompt: models.ChallengePrompt{
			Text: input.Prompt.Text,
			Constraints: models.PromptConstraints{
				MaxWords: input.Prompt.Constraints.MaxWords,
				Language: input.Prompt.Constraints.Language,
			},
			Tags: pq.StringArray(input.Prompt.Tags),
		},
		Availability: models.ChallengeAvailability{
			IsActive: isActive,
			Schedule: schedule,
		},
		Stats:     models.ChallengeStats{SubmissionsCount: 0},
		CreatedBy: c.GetString("userId"),
	}

	if err := h.challenges.Create(&challenge); err != nil {
		logger.Error().Err(err).Msg("Failed to create challenge")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create challenge"})
		return
	}

	c.JSON(http.StatusCreated, challenge)
}

// Update handles PUT /api/challenge/:id (admin only).
func (h *ChallengeHandler) Update(c *gin.Context) {
	id := c.Param("id")

	existing, err := h.challenges.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenge"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		return
	}

	var input validation.UpdateChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	errs := input.Validate()

	patch := map[string]interface{}{}

	if input.Title != "" {
		patch["title"] = input.Title
		patch["slug"] = utils.NewSlug(input.Title)
	}

	if input.Prompt != nil {
		patch["prompt_text"] = input.Prompt.Text
		if input.Prompt.Constraints.MaxWords != 0 {
			patch["prompt_constraints_max_words"] = input.Prompt.Constraints.MaxWords
		}
		if input.Prompt.Constraints.Language != "" {
			patch["prompt_constraints_language"] = input.Prompt.Constraints.Language
		}
		if input.Prompt.Tags != nil {
			patch["prompt_tags"] = pq.StringArray(input.Prompt.Tags)
		}
	}

	if input.Availability != nil {
		if input.Availability.IsActive != nil {
			patch["availability_is_active"] = *input.Availability.IsActive
		}
		if input.Availability.Schedule != nil {
			schedule, scheduleErrs := parseSchedule(input.Availability, time.Now())
			errs = append(errs, scheduleErrs...)
			if input.Availability.Schedule.StartsAt != "" {
				patch["availability_starts_at"] = schedule.StartsAt
			}
			if input.Availability.Schedule.EndsAt != "" {
				patch["availability_ends_at"] = schedule.EndsAt
			}
		}
	}

	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if len(patch) == 0 {
		c.JSON(http.StatusOK, existing)
		return
	}

	updated, err := h.challenges.Update(id, patch)
	if err != nil {
		logger.Error().Err(err).Str("challenge_id", id).Msg("Failed to update challenge")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update challenge"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/challenge/:id (admin only).
func (h *ChallengeHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	existing, err := h.challenges.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch challenge"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		return
	}

	if err := h.challenges.Remove(id); err != nil {
		logger.Error().Err(err).Str("challenge_id", id).Msg("Failed to delete challenge")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete challenge"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Challenge deleted"})
}
