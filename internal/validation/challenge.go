package validation

import "strings"

type PromptConstraintsInput struct {
	MaxWords int    `json:"maxWords"`
	Language string `json:"language"`
}

type PromptInput struct {
	Text        string                 `json:"text"`
	Constraints PromptConstraintsInput `json:"constraints"`
	Tags        []string               `json:"tags"`
}

type ScheduleInput struct {
	StartsAt string `json:"startsAt"`
	EndsAt   string `json:"endsAt"`
}

type AvailabilityInput struct {
	IsActive *bool          `json:"isActive"`
	Schedule *ScheduleInput `json:"schedule"`
}

type CreateChallengeInput struct {
	Title        string             `json:"title"`
	Prompt       PromptInput        `json:"prompt"`
	Availability *AvailabilityInput `json:"availability"`
}

func (in *CreateChallengeInput) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Title is required"})
	} else if !lengthBetween(in.Title, 3, 100) {
		errs = append(errs, FieldError{Field: "title", Message: "Title must be between 3 and 100 characters"})
	}

	if strings.TrimSpace(in.Prompt.Text) == "" {
		errs = append(errs, FieldError{Field: "prompt.text", Message: "Prompt text is required"})
	}

	if in.Prompt.Constraints.MaxWords < 50 || in.Prompt.Constraints.MaxWords > 2000 {
		errs = append(errs, FieldError{Field: "prompt.constraints.maxWords", Message: "maxWords must be between 50 and 2000"})
	}

	if strings.TrimSpace(in.Prompt.Constraints.Language) == "" {
		errs = append(errs, FieldError{Field: "prompt.constraints.language", Message: "Language is required"})
	}

	if in.Prompt.Tags == nil {
		errs = append(errs, FieldError{Field: "prompt.tags", Message: "Prompt tags must be an array"})
	}

	return errs
}

// UpdateChallengeInput is a partial patch; only supplied sections are
// validated and written.
type UpdateChallengeInput struct {
	Title        string             `json:"title"`
	Prompt       *PromptInput       `json:"prompt"`
	Availability *AvailabilityInput `json:"availability"`
}

func (in *UpdateChallengeInput) Validate() []FieldError {
	var errs []FieldError

	if in.Title != "" && !lengthBetween(in.Title, 3, 100) {
		errs = append(errs, FieldError{Field: "title", Message: "Title must be between 3 and 100 characters"})
	}

	if in.Prompt != nil {
		if strings.TrimSpace(in.Prompt.Text) == "" {
			errs = append(errs, FieldError{Field: "prompt.text", Message: "Prompt text is required"})
		}
		if in.Prompt.Constraints.MaxWords != 0 &&
			(in.Prompt.Constraints.MaxWords < 50 || in.Prompt.Constraints.MaxWords > 2000) {
			errs = append(errs, FieldError{Field: "prompt.constraints.maxWords", Message: "maxWords must be between 50 and 2000"})
		}
	}

	return errs
}
