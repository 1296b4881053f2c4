package validation

import (
	"encoding/json"
	"strings"
)

type GenreInput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ClassificationInput struct {
	Genre GenreInput `json:"genre"`
	Tags  []string   `json:"tags"`
}

type PieceContentInput struct {
	Body     string `json:"body"`
	Language string `json:"language"`
}

type CreatePieceInput struct {
	Title          string              `json:"title"`
	Content        PieceContentInput   `json:"content"`
	Classification ClassificationInput `json:"classification"`
	ChallengeID    string              `json:"challengeId"`
}

func (in *CreatePieceInput) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Title is required"})
	} else if !lengthBetween(in.Title, 3, 150) {
		errs = append(errs, FieldError{Field: "title", Message: "Title must be between 3 and 150 characters"})
	}

	if strings.TrimSpace(in.Content.Body) == "" {
		errs = append(errs, FieldError{Field: "content.body", Message: "Content body is required"})
	}

	if strings.TrimSpace(in.Content.Language) == "" {
		errs = append(errs, FieldError{Field: "content.language", Message: "Language is required"})
	}

	errs = append(errs, validateClassification(&in.Classification)...)

	return errs
}

func validateClassification(c *ClassificationInput) []FieldError {
	var errs []FieldError

	if len(c.Tags) < 1 {
		errs = append(errs, FieldError{Field: "classification.tags", Message: "At least one tag is required"})
	} else if len(c.Tags) > 5 {
		errs = append(errs, FieldError{Field: "classification.tags", Message: "Maximum 5 tags allowed"})
	}

	if strings.TrimSpace(c.Genre.ID) == "" {
		errs = append(errs, FieldError{Field: "classification.genre.id", Message: "Genre id is required"})
	}
	if strings.TrimSpace(c.Genre.Name) == "" {
		errs = append(errs, FieldError{Field: "classification.genre.name", Message: "Genre name is required"})
	}

	return errs
}

// UpdatePieceInput is a partial patch: absent fields stay untouched. The raw
// challenge fields exist only so the handler can reject attempts to rebind a
// piece to another challenge after creation.
type UpdatePieceInput struct {
	Title          string               `json:"title"`
	Content        *PieceContentInput   `json:"content"`
	Classification *ClassificationInput `json:"classification"`
	ChallengeID    string               `json:"challengeId"`
	Challenge      json.RawMessage      `json:"challenge"`
}

// HasChallengeChange reports whether the patch tries to set or change the
// challenge association.
func (in *UpdatePieceInput) HasChallengeChange() bool {
	return in.ChallengeID != "" || len(in.Challenge) > 0
}

func (in *UpdatePieceInput) Validate() []FieldError {
	var errs []FieldError

	if in.Title != "" && !lengthBetween(in.Title, 3, 150) {
		errs = append(errs, FieldError{Field: "title", Message: "Title must be between 3 and 150 characters"})
	}

	if in.Content != nil && strings.TrimSpace(in.Content.Body) == "" {
		errs = append(errs, FieldError{Field: "content.body", Message: "Content body is required"})
	}

	if in.Classification != nil {
		errs = append(errs, validateClassification(in.Classification)...)
	}

	return errs
}
