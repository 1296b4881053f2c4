package handlers_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irinaLuta25/creative-writing-platform/internal/models"
	"github.com/irinaLuta25/creative-writing-platform/pkg/utils"
)

func pieceBody(title, body string) map[string]interface{} {
	return map[string]interface{}{
		"title": title,
		"content": map[string]interface{}{
			"body":     body,
			"language": "ro",
		},
		"classification": map[string]interface{}{
			"genre": map[string]interface{}{"id": "proza-scurta", "name": "Proză scurtă"},
			"tags":  []string{"iarnă", "oraș"},
		},
	}
}

func (e *env) seedChallenge(t *testing.T, admin models.User, isActive bool, startsAt, endsAt *time.Time) models.Challenge {
	t.Helper()

	challenge := models.Challenge{
		ID:    utils.GenerateID(),
		Title: "Povești de iarnă",
		Slug:  utils.NewSlug("Povești de iarnă"),
		Prompt: models.ChallengePrompt{
			Text:        "O poveste într-o noapte de iarnă.",
			Constraints: models.PromptConstraints{MaxWords: 800, Language: "ro"},
			Tags:        pq.StringArray{"iarnă"},
		},
		Availability: models.ChallengeAvailability{
			IsActive: isActive,
			Schedule: models.ChallengeSchedule{StartsAt: startsAt, EndsAt: endsAt},
		},
		CreatedBy: admin.ID,
	}
	require.NoError(t, e.db.Create(&challenge).Error)
	return challenge
}

func TestCreatePiece(t *testing.T) {
	e := setupEnv(t)
	user, token := e.createUser(t, "writer@example.com", "Ana Popescu")

	// 450 words should come out at 2 minutes of reading time.
	body := strings.TrimSpace(strings.Repeat("cuvânt ", 450))

	w := e.do(t, "POST", "/api/piece", pieceBody("Povești Înserate!", body), token)
	assert.Equal(t, http.StatusCreated, w.Code)

	var piece models.Piece
	decode(t, w, &piece)

	assert.True(t, strings.HasPrefix(piece.Slug, "povesti-inserate-"), "slug was %q", piece.Slug)
	assert.Equal(t, 450, piece.Stats.Words)
	assert.Equal(t, 2, piece.Content.ReadingTimeMin)
	assert.Equal(t, 0, piece.Stats.CommentsCount)
	assert.Equal(t, user.ID, piece.Author.ID)
	assert.Equal(t, "Ana Popescu", piece.Author.DisplayName)
	assert.Len(t, []rune(piece.Content.Excerpt), 200)
	assert.Nil(t, piece.Challenge)

	// The author's denormalized pieces counter moved with the write.
	var author models.User
	require.NoError(t, e.db.First(&author, "id = ?", user.ID).Error)
	assert.Equal(t, 1, author.Stats.PiecesCount)

	// Readable again by id and by slug.
	w = e.do(t, "GET", "/api/piece/"+piece.ID, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = e.do(t, "GET", "/api/piece/slug/"+piece.Slug, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreatePieceRequiresAuth(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, "POST", "/api/piece", pieceBody("Fără token", "text"), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreatePieceValidation(t *testing.T) {
	e := setupEnv(t)
	_, token := e.createUser(t, "writer.val@example.com", "Ana")

	input := pieceBody("ab", "")
	input["classification"] = map[string]interface{}{
		"genre": map[string]interface{}{"id": "", "name": ""},
		"tags":  []string{"1", "2", "3", "4", "5", "6"},
	}

	w := e.do(t, "POST", "/api/piece", input, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title must be between 3 and 150 characters")
	assert.Contains(t, w.Body.String(), "Content body is required")
	assert.Contains(t, w.Body.String(), "Maximum 5 tags allowed")
	assert.Contains(t, w.Body.String(), "Genre id is required")
}

func TestCreatePieceChallengeWindows(t *testing.T) {
	e := setupEnv(t)
	admin, _ := e.createUser(t, "admin.win@example.com", "Admin", models.RoleUser, models.RoleAdmin)
	_, token := e.createUser(t, "writer.win@example.com", "Ana")

	now := time.Now()
	past := now.Add(-48 * time.Hour)
	recent := now.Add(-1 * time.Hour)
	future := now.Add(48 * time.Hour)

	closed := e.seedChallenge(t, admin, true, &past, &recent)
	notStarted := e.seedChallenge(t, admin, true, &future, nil)
	inactive := e.seedChallenge(t, admin, false, &past, &future)
	open := e.seedChallenge(t, admin, true, &past, &future)

	cases := []struct {
		name        string
		challengeID string
		wantMessage string
	}{
		{"missing", "no-such-id", "Challenge not found"},
		{"closed", closed.ID, "Challenge is closed"},
		{"not started", notStarted.ID, "Challenge has not started yet"},
		{"inactive", inactive.ID, "Challenge is not active"},
	}

	for _, tc := range cases {
		input := pieceBody("Piesa "+tc.name, "un text oarecare")
		input["challengeId"] = tc.challengeID
		w := e.do(t, "POST", "/api/piece", input, token)
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.name)
		assert.Contains(t, w.Body.String(), tc.wantMessage, tc.name)
	}

	// The open one takes the submission and freezes a snapshot.
	input := pieceBody("Piesa acceptată", "un text oarecare")
	input["challengeId"] = open.ID
	w := e.do(t, "POST", "/api/piece", input, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	var piece models.Piece
	decode(t, w, &piece)
	require.NotNil(t, piece.Challenge)
	assert.Equal(t, open.ID, piece.Challenge.ID)
	assert.Equal(t, open.Title, piece.Challenge.Title)
	assert.Equal(t, 800, piece.Challenge.Constraints.MaxWords)
}

func TestUpdatePiece(t *testing.T) {
	e := setupEnv(t)
	owner, token := e.createUser(t, "owner.up@example.com", "Ana")
	piece := e.createPiece(t, owner, "Titlu Vechi")
	oldSlug := piece.Slug

	w := e.do(t, "PUT", "/api/piece/"+piece.ID, map[string]interface{}{
		"title": "Titlu Nou Și Însorit",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Piece
	decode(t, w, &updated)
	assert.Equal(t, "Titlu Nou Și Însorit", updated.Title)
	assert.True(t, strings.HasPrefix(updated.Slug, "titlu-nou-si-insorit-"), "slug was %q", updated.Slug)
	assert.NotEqual(t, oldSlug, updated.Slug)
	// Body untouched by a title-only patch.
	assert.Equal(t, piece.Content.Body, updated.Content.Body)

	// Body edits rederive the excerpt, word count, and reading time.
	newBody := strings.TrimSpace(strings.Repeat("alt ", 200))
	w = e.do(t, "PUT", "/api/piece/"+piece.ID, map[string]interface{}{
		"content": map[string]interface{}{"body": newBody},
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	decode(t, w, &updated)
	assert.Equal(t, newBody, updated.Content.Body)
	assert.Equal(t, 200, updated.Stats.Words)
	assert.Equal(t, 1, updated.Content.ReadingTimeMin)
	// Title survived the body-only patch.
	assert.Equal(t, "Titlu Nou Și Însorit", updated.Title)
}

func TestUpdatePieceChallengeImmutable(t *testing.T) {
	e := setupEnv(t)
	admin, _ := e.createUser(t, "admin.imm@example.com", "Admin", models.RoleUser, models.RoleAdmin)
	owner, token := e.createUser(t, "owner.imm@example.com", "Ana")

	now := time.Now()
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)
	open := e.seedChallenge(t, admin, true, &past, &future)
	other := e.seedChallenge(t, admin, true, &past, &future)

	piece := e.createPiece(t, owner, "Cu provocare")
	piece.ChallengeID = &open.ID
	piece.Challenge = open.Snapshot()
	require.NoError(t, e.db.Save(&piece).Error)

	w := e.do(t, "PUT", "/api/piece/"+piece.ID, map[string]interface{}{
		"challengeId": other.ID,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot be changed")

	// Snapshot unchanged.
	var stored models.Piece
	require.NoError(t, e.db.First(&stored, "id = ?", piece.ID).Error)
	require.NotNil(t, stored.Challenge)
	assert.Equal(t, open.ID, stored.Challenge.ID)
}

func TestPieceOwnership(t *testing.T) {
	e := setupEnv(t)
	owner, _ := e.createUser(t, "owner.own@example.com", "Ana")
	_, intruderToken := e.createUser(t, "intruder@example.com", "Mihai")
	piece := e.createPiece(t, owner, "Al meu")

	w := e.do(t, "PUT", "/api/piece/"+piece.ID, map[string]interface{}{"title": "Al tău acum"}, intruderToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(t, "DELETE", "/api/piece/"+piece.ID, nil, intruderToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Resource unmodified.
	var stored models.Piece
	require.NoError(t, e.db.First(&stored, "id = ?", piece.ID).Error)
	assert.Equal(t, "Al meu", stored.Title)

	w = e.do(t, "PUT", "/api/piece/no-such-piece", map[string]interface{}{"title": "Orice"}, intruderToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePiece(t *testing.T) {
	e := setupEnv(t)
	owner, token := e.createUser(t, "owner.del@example.com", "Ana")
	piece := e.createPiece(t, owner, "De șters")

	w := e.do(t, "DELETE", "/api/piece/"+piece.ID, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, "GET", "/api/piece/"+piece.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPieces(t *testing.T) {
	e := setupEnv(t)
	owner, _ := e.createUser(t, "owner.list@example.com", "Ana")
	older := e.createPiece(t, owner, "Prima")
	newer := e.createPiece(t, owner, "A doua")
	e.backdatePiece(t, older.ID, time.Now().Add(-time.Hour))

	w := e.do(t, "GET", "/api/piece", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var pieces []models.Piece
	decode(t, w, &pieces)
	require.Len(t, pieces, 2)

	// Newest first.
	assert.Equal(t, newer.ID, pieces[0].ID)
	assert.Equal(t, older.ID, pieces[1].ID)
}
