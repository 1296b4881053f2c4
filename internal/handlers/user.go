package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/irinaLuta25/creative-writing-platform/internal/repository"
	"github.com/irinaLuta25/creative-writing-platform/internal/validation"
	"github.com/irinaLuta25/creative-writing-platform/pkg/logger"
)

type UserHandler struct {
	users *repository.UserRepository
}

func NewUserHandler(users *repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// GetMe handles GET /api/user/me
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.users.FindByID(c.GetString("userId"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch current user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMe handles PUT /api/user/me. Profile edits do not rewrite the author
// snapshots already embedded in pieces and comments.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var input validation.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if errs := input.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	patch := map[string]interface{}{}
	if input.DisplayName != nil {
		patch["profile_display_name"] = strings.TrimSpace(*input.DisplayName)
	}
	if input.Bio != nil {
		patch["profile_bio"] = *input.Bio
	}

	if len(patch) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	user, err := h.users.UpdateProfile(c.GetString("userId"), patch)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to update profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}
