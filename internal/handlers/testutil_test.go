package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/irinaLuta25/creative-writing-platform/internal/config"
	"github.com/irinaLuta25/creative-writing-platform/internal/handlers"
	"github.com/irinaLuta25/creative-writing-platform/internal/middleware"
	"github.com/irinaLuta25/creative-writing-platform/internal/models"
	"github.com/irinaLuta25/creative-writing-platform/internal/repository"
	"github.com/irinaLuta25/creative-writing-platform/internal/routes"
	"github.com/irinaLuta25/creative-writing-platform/pkg/logger"
	"github.com/irinaLuta25/creative-writing-platform/pkg/utils"
)

type env struct {
	router *gin.Engine
	db     *gorm.DB
	ip     string
}

// setupEnv builds an in-memory database and a fully wired router, so tests
// exercise the real middleware chains.
func setupEnv(t *testing.T) *env {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret", Env: "test"}
	logger.Init("test")

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Piece{},
		&models.Challenge{},
		&models.Comment{},
	))

	// The shared cache keeps data across connections; start each test clean.
	for _, model := range []interface{}{
		&models.Comment{},
		&models.Piece{},
		&models.Challenge{},
		&models.User{},
	} {
		require.NoError(t, db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error)
	}

	users := repository.NewUserRepository(db)
	pieces := repository.NewPieceRepository(db)
	challenges := repository.NewChallengeRepository(db)
	comments := repository.NewCommentRepository(db)

	r := gin.New()
	r.Use(middleware.ErrorHandlerMiddleware())
	api := r.Group("/api")
	routes.RegisterUserRoutes(api, handlers.NewAuthHandler(users), handlers.NewUserHandler(users))
	routes.RegisterPieceRoutes(api, handlers.NewPieceHandler(pieces, users, challenges),
		handlers.NewCommentHandler(comments, pieces, users), pieces, comments)
	routes.RegisterChallengeRoutes(api, handlers.NewChallengeHandler(challenges, pieces))

	// A distinct client IP per test keeps the auth rate limiter out of the way.
	ip := fmt.Sprintf("10.0.%d.%d", rand.Intn(255), rand.Intn(255))

	return &env{router: r, db: db, ip: ip}
}

func (e *env) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = e.ip + ":51234"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// createUser inserts a user directly and returns it with a valid token.
func (e *env) createUser(t *testing.T, email, displayName string, roles ...string) (models.User, string) {
	t.Helper()

	if len(roles) == 0 {
		roles = []string{models.RoleUser}
	}

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := models.User{
		ID:           utils.GenerateID(),
		Email:        email,
		PasswordHash: hash,
		Profile: models.UserProfile{
			DisplayName: displayName,
			Username:    email[:len(email)-len("@example.com")],
		},
		Roles: pq.StringArray(roles),
	}
	require.NoError(t, e.db.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID, user.Email, roles)
	require.NoError(t, err)

	return user, token
}

// createPiece inserts a piece owned by the given user.
func (e *env) createPiece(t *testing.T, owner models.User, title string) models.Piece {
	t.Helper()

	body := "Un oraș adormit sub zăpadă aștepta dimineața."
	words := utils.WordCount(body)

	piece := models.Piece{
		ID:    utils.GenerateID(),
		Title: title,
		Slug:  utils.NewSlug(title),
		Content: models.PieceContent{
			Body:           body,
			Excerpt:        utils.Excerpt(body, 200),
			Language:       "ro",
			ReadingTimeMin: utils.ReadingTime(words),
		},
		Classification: models.Classification{
			Genre: models.Genre{ID: "proza-scurta", Name: "Proză scurtă"},
			Tags:  pq.StringArray{"iarnă"},
		},
		Author:          owner.Snapshot(),
		Stats:           models.PieceStats{Words: words},
		CommentsPreview: []models.CommentPreview{},
		CreatedBy:       owner.ID,
	}
	require.NoError(t, e.db.Create(&piece).Error)
	return piece
}

// backdatePiece rewrites a piece's creation time so ordering tests can rely
// on distinct timestamps.
func (e *env) backdatePiece(t *testing.T, id string, at time.Time) {
	t.Helper()
	require.NoError(t, e.db.Model(&models.Piece{}).Where("id = ?", id).
		UpdateColumn("created_at", at).Error)
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
