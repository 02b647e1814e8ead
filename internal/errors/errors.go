package errors

import (
	"errors"
	"net/http"
)

// Validation failures, raised before any persistence attempt.
var (
	// ErrMissingField is returned when a required field is absent or empty.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidEmail is returned when the email is not a valid address.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrWeakPassword is returned when the password fails the strength policy.
	ErrWeakPassword = errors.New("weak password")
	// ErrInvalidPhone is returned when the phone number has fewer than 10 digits.
	ErrInvalidPhone = errors.New("invalid phone")
	// ErrInvalidGender is returned when gender is outside the allowed set.
	ErrInvalidGender = errors.New("invalid gender")
	// ErrInvalidMembershipStatus is returned when the membership status is unknown.
	ErrInvalidMembershipStatus = errors.New("invalid membership status")
	// ErrInvalidDateOfBirth is returned when the date of birth cannot be parsed.
	ErrInvalidDateOfBirth = errors.New("invalid date of birth")
)

// Authentication and resource failures.
var (
	// ErrUserExists is returned when signing up with an email already registered.
	ErrUserExists = errors.New("user already exists")
	// ErrIncorrectEmail is returned when logging in with an unknown email.
	ErrIncorrectEmail = errors.New("incorrect email")
	// ErrIncorrectPassword is returned when the password does not match the stored hash.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrTourNotFound is returned when a tour does not exist or belongs to another user.
	ErrTourNotFound = errors.New("tour not found")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors are
// treated as infrastructure failures and reported as generic 500s.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingField):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELD")
	case errors.Is(err, ErrInvalidEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_EMAIL")
	case errors.Is(err, ErrWeakPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "WEAK_PASSWORD")
	case errors.Is(err, ErrInvalidPhone):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PHONE")
	case errors.Is(err, ErrInvalidGender):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_GENDER")
	case errors.Is(err, ErrInvalidMembershipStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_MEMBERSHIP_STATUS")
	case errors.Is(err, ErrInvalidDateOfBirth):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE_OF_BIRTH")
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrIncorrectEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INCORRECT_EMAIL")
	case errors.Is(err, ErrIncorrectPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INCORRECT_PASSWORD")
	case errors.Is(err, ErrTourNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TOUR_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
