package apperrors

import (
	"net/http"
)

// Factories for the recurring business errors of the marketplace domain.

// ErrNotFound converts a repository not-found error (gorm.ErrRecordNotFound
// or a sentinel) into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate-row error into a 409 AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrNotProfileOwner is returned when a user tries to act on a business
// profile, listing or document they do not own.
var ErrNotProfileOwner = New(
	CodeForbidden,
	"business_logic",
	"Only the profile owner may perform this operation",
	http.StatusForbidden,
)

// ErrNotConfidential is returned when an access request targets a document
// that does not require approval.
var ErrNotConfidential = New(
	CodeInvalidOperation,
	"documents",
	"Document is not confidential; no access request is required",
	http.StatusBadRequest,
)
