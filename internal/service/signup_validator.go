package service

import (
	"regexp"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	apperrors "tourbase/internal/errors"
)

// dateOfBirthLayout is the wire format for the date_of_birth field.
const dateOfBirthLayout = "2006-01-02"

var phoneRegex = regexp.MustCompile(`^\d{10,}$`)

// SignupInput carries the raw signup fields as submitted by the client.
type SignupInput struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	PhoneNumber      string `json:"phone_number"`
	Gender           string `json:"gender"`
	DateOfBirth      string `json:"date_of_birth"`
	MembershipStatus string `json:"membership_status"`
}

// SignupValidator is the single validation entry point for auth operations.
// Checks run in a fixed order and the first failure wins, so callers get
// one deterministic error per request.
type SignupValidator struct {
	validate *validator.Validate
}

// NewSignupValidator creates a new signup validator.
func NewSignupValidator() *SignupValidator {
	return &SignupValidator{validate: validator.New()}
}

// ValidateSignup checks all signup fields. Order: presence, email format,
// password strength, phone format, gender, membership status, date of birth.
func (v *SignupValidator) ValidateSignup(in SignupInput) error {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.PhoneNumber == "" ||
		in.Gender == "" || in.DateOfBirth == "" || in.MembershipStatus == "" {
		return apperrors.ErrMissingField
	}
	if err := v.validate.Var(in.Email, "email"); err != nil {
		return apperrors.ErrInvalidEmail
	}
	if !isStrongPassword(in.Password) {
		return apperrors.ErrWeakPassword
	}
	if !phoneRegex.MatchString(in.PhoneNumber) {
		return apperrors.ErrInvalidPhone
	}
	if err := v.validate.Var(in.Gender, "oneof=Male Female Other"); err != nil {
		return apperrors.ErrInvalidGender
	}
	if err := v.validate.Var(in.MembershipStatus, "oneof=Active Inactive Suspended"); err != nil {
		return apperrors.ErrInvalidMembershipStatus
	}
	if _, err := time.Parse(dateOfBirthLayout, in.DateOfBirth); err != nil {
		return apperrors.ErrInvalidDateOfBirth
	}
	return nil
}

// ValidateLogin checks that both credentials are present.
func (v *SignupValidator) ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return apperrors.ErrMissingField
	}
	return nil
}

// isStrongPassword requires at least 8 characters with an upper case
// letter, a lower case letter, a digit, and a symbol.
func isStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
