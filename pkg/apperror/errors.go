package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Signature & Verification (SIG) ----

func ErrMissingSignature() *AppError {
	return New("SIG_001", "Missing signature header", http.StatusBadRequest)
}

func ErrInvalidSignature() *AppError {
	return New("SIG_002", "Invalid signature", http.StatusBadRequest)
}

func ErrStaleTimestamp() *AppError {
	return New("SIG_003", "Signature timestamp outside tolerance", http.StatusBadRequest)
}

// ---- Event Decoding (EVT) ----

func ErrMalformedPayload(err error) *AppError {
	return Wrap("EVT_001", "Malformed event payload", http.StatusBadRequest, err)
}

func ErrInvalidEventShape(eventType string, err error) *AppError {
	return Wrap("EVT_002", fmt.Sprintf("Event payload does not match variant %q", eventType), http.StatusBadRequest, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
