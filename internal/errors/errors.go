package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when the bearer credential is missing or
	// cannot be resolved to a user. Only a generic message crosses the boundary;
	// the underlying reason stays in the server log.
	ErrUnauthenticated = errors.New("unauthorized: invalid or expired token")
	// ErrProfileUnavailable is returned when the quota profile row cannot be read.
	ErrProfileUnavailable = errors.New("user profile for limits not found or access denied")
	// ErrGenerationEmpty is returned when the generator responds with no text.
	ErrGenerationEmpty = errors.New("failed to generate proposal: empty response")
	// ErrProposalNotFound is returned when a proposal does not exist or belongs to another user.
	ErrProposalNotFound = errors.New("proposal not found")
)

// QuotaExceededError is returned when a user has exhausted the daily
// generation allowance. Limit is surfaced to the caller since it is actionable.
type QuotaExceededError struct {
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("daily generation limit (%d) exceeded, please try again tomorrow", e.Limit)
}

// ProviderError wraps an error reported by the text-generation provider.
// StatusCode is the provider's HTTP status when available, zero otherwise.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// SaveFailedError is returned when the proposal was generated but could not be
// persisted. Content carries the generated text so the caller still receives it.
type SaveFailedError struct {
	Content string
	Err     error
}

func (e *SaveFailedError) Error() string {
	return fmt.Sprintf("proposal generated but failed to save: %v", e.Err)
}

func (e *SaveFailedError) Unwrap() error { return e.Err }

// ErrorResponse represents a standardized error response.
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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var quotaErr *QuotaExceededError
	if errors.As(err, &quotaErr) {
		return NewHTTPError(http.StatusTooManyRequests, quotaErr.Error(), "QUOTA_EXCEEDED")
	}
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		status := providerErr.StatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return NewHTTPError(status, providerErr.Error(), "PROVIDER_ERROR")
	}
	var saveErr *SaveFailedError
	if errors.As(err, &saveErr) {
		return NewHTTPError(http.StatusInternalServerError, saveErr.Error(), "SAVE_FAILED")
	}

	switch {
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrProfileUnavailable):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "PROFILE_UNAVAILABLE")
	case errors.Is(err, ErrGenerationEmpty):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "GENERATION_EMPTY")
	case errors.Is(err, ErrProposalNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROPOSAL_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
