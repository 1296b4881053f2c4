package validation

import "strings"

type CommentContentInput struct {
	Text     string   `json:"text"`
	Mentions []string `json:"mentions"`
}

type CreateCommentInput struct {
	Content CommentContentInput `json:"content"`
}

func (in *CreateCommentInput) Validate() []FieldError {
	var errs []FieldError

	text := strings.TrimSpace(in.Content.Text)
	if text == "" {
		errs = append(errs, FieldError{Field: "content.text", Message: "Comment text is required"})
	} else if len([]rune(in.Content.Text)) > 1000 {
		errs = append(errs, FieldError{Field: "content.text", Message: "Comment must be at most 1000 characters"})
	}

	return errs
}
