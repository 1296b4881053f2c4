package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/irinaLuta25/creative-writing-platform/internal/models"
	"github.com/irinaLuta25/creative-writing-platform/internal/repository"
	"github.com/irinaLuta25/creative-writing-platform/internal/validation"
	"github.com/irinaLuta25/creative-writing-platform/pkg/logger"
	"github.com/irinaLuta25/creative-writing-platform/pkg/utils"
)

type AuthHandler struct {
	users *repository.UserRepository
}

func NewAuthHandler(users *repository.UserRepository) *AuthHandler {
	return &AuthHandler{users: users}
}

// publicUser is the profile projection returned by register/login. The
// password hash never leaves the server.
func publicUser(u *models.User) gin.H {
	return gin.H{
		"id":      u.ID,
		"email":   u.Email,
		"profile": u.Profile,
		"roles":   u.Roles,
	}
}

// Register handles POST /api/user/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input validation.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if errs := input.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := h.users.EmailExists(email)
	if err != nil {
		logger.Error().Err(err).Msg("Registration failed: email lookup")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
		return
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	user := models.User{
		ID:           utils.GenerateID(),
		Email:        email,
		PasswordHash: passwordHash,
		Profile: models.UserProfile{
			DisplayName: strings.TrimSpace(input.DisplayName),
			Username:    usernameFromEmail(email),
			Bio:         "",
		},
		Roles: pq.StringArray{models.RoleUser},
	}

	if err := h.users.Create(&user); err != nil {
		// Unique index on email catches the race between the existence check
		// and the insert.
		logger.Warn().Err(err).Str("email", email).Msg("Registration failed: create user")
		c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, []string(user.Roles))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	logger.Info().Str("user_id", user.ID).Msg("User registered")

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    publicUser(&user),
	})
}

// Login handles POST /api/user/login. Missing users and bad passwords get
// the same generic answer.
func (h *AuthHandler) Login(c *gin.Context) {
	var input validation.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if errs := input.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := h.users.FindByEmail(email)
	if err != nil {
		logger.Error().Err(err).Msg("Login failed: user lookup")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}
	if user == nil || !utils.CheckPassword(input.Password, user.PasswordHash) {
		logger.Warn().Str("email", email).Msg("Login failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid login"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, []string(user.Roles))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	logger.Info().Str("user_id", user.ID).Msg("User logged in")

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    publicUser(user),
	})
}

// usernameFromEmail defaults the username to the email's local part.
func usernameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
