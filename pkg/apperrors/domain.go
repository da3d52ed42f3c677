package apperrors

import (
	"net/http"
	"strings"
)

// Factories for wrapping repository errors into API-facing errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate write into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the general-purpose 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation flags an operation the current state does not allow.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus flags an illegal status value or transition.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// Predefined static errors.

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"applications",
	"You have already applied to this job",
	http.StatusConflict,
)

// FriendlyMessage maps raw store error text onto copy safe to show users.
// The store client's messages leak implementation detail ("duplicate key
// value violates unique constraint"), so we pattern-match the usual ones.
func FriendlyMessage(err error) string {
	if err == nil {
		return ""
	}
	raw := strings.ToLower(err.Error())
	switch {
	case strings.Contains(raw, "invalid login credentials"),
		strings.Contains(raw, "crypto/bcrypt"):
		return "Invalid email or password"
	case strings.Contains(raw, "duplicate key"),
		strings.Contains(raw, "unique constraint"):
		return "This record already exists"
	case strings.Contains(raw, "record not found"):
		return "Resource not found"
	case strings.Contains(raw, "connection refused"),
		strings.Contains(raw, "i/o timeout"):
		return "Service is temporarily unavailable, please try again"
	}
	return "Something went wrong, please try again"
}
