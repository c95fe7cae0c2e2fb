package errors

import (
	"net/http"

	"food/internal/domain/entity"
	"food/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int             // HTTP status code
	ErrorCode() string         // Business error code
	Message() string           // User-friendly error message
	Details() string           // Detailed error information (optional)
	Severity() entity.Severity // WARNING for client-correctable failures, ERROR otherwise
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	severity  entity.Severity
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
		severity:  severityFor(httpCode),
	}
}

// NewWarning creates a client-correctable error answered with 400 and WARNING severity.
func NewWarning(errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  http.StatusBadRequest,
		errorCode: errorCode,
		message:   message,
		severity:  entity.SeverityWarning,
	}
}

// NewValidationError reports the first failing field rule of a request.
func NewValidationError(message string) *BaseError {
	return NewWarning("VALIDATION_FAILED", message)
}

func severityFor(httpCode int) entity.Severity {
	if httpCode == http.StatusBadRequest || httpCode == http.StatusConflict {
		return entity.SeverityWarning
	}

	return entity.SeverityError
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Severity returns the response severity for this error
func (e *BaseError) Severity() entity.Severity {
	return e.severity
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	cloned := *e
	cloned.details = details

	return &cloned
}

// WithMessage returns a copy carrying a different user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	cloned := *e
	cloned.message = message

	return &cloned
}

// Predefined error types
var (
	// Users
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailAlreadyExists = NewWarning(
		"EMAIL_ALREADY_EXISTS",
		"Email is already registered",
	)

	// Authentication
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrUserInactive = NewBaseError(
		http.StatusUnauthorized,
		"USER_INACTIVE",
		"User account is inactive",
		"",
	)

	ErrAccessDenied = NewBaseError(
		http.StatusUnauthorized,
		"ACCESS_DENIED",
		"Access denied",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Restaurants
	ErrRestaurantNotFound = NewBaseError(
		http.StatusNotFound,
		"RESTAURANT_NOT_FOUND",
		"Restaurant not found",
		"",
	)

	ErrOwnerTypeRequired = NewWarning(
		"OWNER_TYPE_REQUIRED",
		"Only restaurant owners can own restaurants",
	)

	ErrOwnerImmutable = NewWarning(
		"OWNER_IMMUTABLE",
		"Restaurant owner cannot be changed",
	)

	ErrRestaurantInactive = NewWarning(
		"RESTAURANT_INACTIVE",
		"Restaurant is not active",
	)

	// Ratings
	ErrRatingNotFound = NewBaseError(
		http.StatusNotFound,
		"RATING_NOT_FOUND",
		"Rating not found",
		"",
	)

	ErrNoRatingsForRestaurant = NewBaseError(
		http.StatusNotFound,
		"RATINGS_NOT_FOUND",
		"Restaurant has no ratings",
		"",
	)

	ErrRatingAlreadyExists = NewWarning(
		"RATING_ALREADY_EXISTS",
		"User has already rated this restaurant",
	)

	ErrOwnerCannotRate = NewWarning(
		"OWNER_CANNOT_RATE",
		"Owners cannot rate their own restaurant",
	)

	// Favorites
	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"Favorite not found",
		"",
	)

	ErrFavoriteAlreadyExists = NewWarning(
		"FAVORITE_ALREADY_EXISTS",
		"Restaurant is already in favorites",
	)

	ErrFavoriteAbsent = NewWarning(
		"FAVORITE_ABSENT",
		"Restaurant is not in favorites",
	)

	// Notifications
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrNotificationAlreadyRead = NewWarning(
		"NOTIFICATION_ALREADY_READ",
		"Notification was already marked as read",
	)

	ErrNoUnreadNotifications = NewWarning(
		"NO_UNREAD_NOTIFICATIONS",
		"There are no unread notifications",
	)

	ErrInvalidNotificationType = NewWarning(
		"INVALID_NOTIFICATION_TYPE",
		"Invalid notification type",
	)

	// Photos
	ErrPhotoNotFound = NewBaseError(
		http.StatusNotFound,
		"PHOTO_NOT_FOUND",
		"Photo not found",
		"",
	)

	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"Image storage operation failed",
		"",
	)

	// General errors
	ErrValidationFailed = NewValidationError("Input validation failed")

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Permission denied",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Severity returns the response severity for this error
func (e *DatabaseExecuteError) Severity() entity.Severity {
	return entity.SeverityError
}
