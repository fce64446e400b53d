package services

import (
	"errors"
	"regexp"
	"strings"
)

// ErrValidation matches every *ValidationError.
var ErrValidation = errors.New("validation error")

// ValidationError is a client-side input check failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Registration is the sign-up form.
type Registration struct {
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

// ValidateLogin checks the login form.
func ValidateLogin(username, password string) error {
	if err := required("username", username); err != nil {
		return err
	}
	if password == "" {
		return &ValidationError{Field: "password", Message: "is required"}
	}
	return nil
}

// ValidateRegistration checks the sign-up form.
func ValidateRegistration(r Registration) error {
	if err := required("email", r.Email); err != nil {
		return err
	}
	if err := required("username", r.Username); err != nil {
		return err
	}
	if r.Password == "" {
		return &ValidationError{Field: "password", Message: "is required"}
	}
	if !emailPattern.MatchString(r.Email) {
		return &ValidationError{Field: "email", Message: "is not a valid email address"}
	}
	if r.Password != r.ConfirmPassword {
		return &ValidationError{Field: "confirm_password", Message: "passwords do not match"}
	}
	return nil
}

func validateComment(content string) error {
	return required("content", content)
}

func validateNewPost(imageURL string) error {
	return required("image_url", imageURL)
}
