package validation

import "strings"

type RegisterInput struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

func (in *RegisterInput) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.DisplayName) == "" {
		errs = append(errs, FieldError{Field: "displayName", Message: "Display name is required"})
	} else if !lengthBetween(in.DisplayName, 2, 40) {
		errs = append(errs, FieldError{Field: "displayName", Message: "Display name must be between 2 and 40 characters"})
	}

	if !validEmail(in.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email"})
	}

	if len(strings.TrimSpace(in.Password)) < 8 {
		errs = append(errs, FieldError{Field: "password", Message: "Password should have a minimum of 8 characters"})
	}

	return errs
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *LoginInput) Validate() []FieldError {
	var errs []FieldError

	if !validEmail(in.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email"})
	}

	if len(strings.TrimSpace(in.Password)) < 8 {
		errs = append(errs, FieldError{Field: "password", Message: "Password should have a minimum of 8 characters"})
	}

	return errs
}

type UpdateProfileInput struct {
	DisplayName *string `json:"displayName"`
	Bio         *string `json:"bio"`
}

func (in *UpdateProfileInput) Validate() []FieldError {
	var errs []FieldError

	if in.DisplayName != nil && !lengthBetween(*in.DisplayName, 2, 40) {
		errs = append(errs, FieldError{Field: "displayName", Message: "Display name must be between 2 and 40 characters"})
	}

	return errs
}
