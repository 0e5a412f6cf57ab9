package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// The admin frontend maps these codes to display messages.

const (
	// ==================== Auth (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden = "AUTHZ_FORBIDDEN"
	AuthzAdminOnly = "AUTHZ_ADMIN_ONLY"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT"
	ValidationInvalidRange  = "VALIDATION_INVALID_RANGE"
	ValidationRequired      = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Menu (MENU_) ====================
	MenuItemNotFound     = "MENU_ITEM_NOT_FOUND"
	MenuCategoryNotFound = "MENU_CATEGORY_NOT_FOUND"
	MenuCategoryExists   = "MENU_CATEGORY_EXISTS"

	// ==================== Reviews (REVIEW_) ====================
	ReviewNotFound      = "REVIEW_NOT_FOUND"
	ReviewInvalidRating = "REVIEW_INVALID_RATING"

	// ==================== Reservations (RESERVATION_) ====================
	ReservationNotFound      = "RESERVATION_NOT_FOUND"
	ReservationInvalidStatus = "RESERVATION_INVALID_STATUS"
	ReservationInvalidGuests = "RESERVATION_INVALID_GUESTS"

	// ==================== Uploads (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"
	UploadFailed          = "UPLOAD_FAILED"
	UploadUnauthorized    = "UPLOAD_UNAUTHORIZED"
	UploadAccessDenied    = "UPLOAD_ACCESS_DENIED"

	// ==================== Content store (CONTENT_) ====================
	ContentNotLoaded = "CONTENT_NOT_LOADED"

	// ==================== Recommendations (AI_) ====================
	AINotConfigured = "AI_NOT_CONFIGURED"
	AIRequestFailed = "AI_REQUEST_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"
)
