package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a user-facing message
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts a low-level error into a code and message safe to
// show to an admin, without leaking driver internals.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Something went wrong",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// 1. GORM errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// 2. PostgreSQL errors

	// 2-1. Unique constraint violation (23505)
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStrLower)
	}

	// 2-2. Foreign key constraint violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "Related data prevents this operation",
		}
	}

	// 3. Network / connection errors
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "Could not reach a backing service. Please try again later",
		}
	}

	// 4. Default
	return ErrorInfo{
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "email") || strings.Contains(errLower, "idx_users_email") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "This email is already in use",
		}
	}
	if strings.Contains(errLower, "menu_categories") || strings.Contains(errLower, "idx_menu_categories_name") {
		return ErrorInfo{
			Code:    MenuCategoryExists,
			Message: "A category with this name already exists",
		}
	}
	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "This record already exists",
	}
}

func getNotFoundMessage(context string) string {
	switch context {
	case "menu":
		return "Menu item not found"
	case "category":
		return "Menu category not found"
	case "offer":
		return "Offer not found"
	case "review":
		return "Review not found"
	case "gallery":
		return "Gallery image not found"
	case "chef":
		return "Chef not found"
	case "reservation":
		return "Reservation not found"
	case "user":
		return "User not found"
	default:
		return "Record not found"
	}
}

func getDefaultErrorMessage(context string) string {
	if context != "" {
		return "Failed to process " + context + " request"
	}
	return "Something went wrong. Please try again later"
}
