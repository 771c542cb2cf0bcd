// Package errors defines application-level error types carrying both an HTTP
// status and a business error code, so the delivery layer can translate any
// failure into the unified response envelope.
package errors

import (
	"net/http"

	"maison/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
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

// Is treats base errors with the same business code as equal, so copies
// produced by WithDetails still match their sentinel under errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Backend collaboration errors. Every failure is either a transport/parse
	// problem or an explicit rejection reported by the backend; the two are
	// kept apart so the caller can show a precise notification.
	ErrBackendUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNAVAILABLE",
		"The store service is unreachable, please try again",
		"",
	)

	ErrBackendRejected = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_REJECTED",
		"The store service rejected the request",
		"",
	)

	// Authentication and authorization
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Sign in to continue",
		"",
	)

	ErrAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ACCESS_DENIED",
		"This area is restricted to administrators",
		"",
	)

	ErrRoleCheckFailed = NewBaseError(
		http.StatusForbidden,
		"ROLE_CHECK_FAILED",
		"Could not verify your access, please try again",
		"",
	)

	// Catalog
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"This product is no longer available",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Unknown collection",
		"",
	)

	// Orders and delivery
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrUnknownDeliveryAction = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_DELIVERY_ACTION",
		"Unsupported delivery action",
		"",
	)

	ErrCourierNameRequired = NewBaseError(
		http.StatusBadRequest,
		"COURIER_NAME_REQUIRED",
		"A courier name is required to assign a delivery",
		"",
	)

	ErrInvalidStatusPair = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS_PAIR",
		"Unknown order or delivery status",
		"",
	)

	// Checkout
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Your cart is empty",
		"",
	)

	ErrInvalidPhone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE",
		"Phone number must be exactly 11 digits",
		"",
	)

	ErrUnknownVoucher = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_VOUCHER",
		"This voucher code is not recognised",
		"",
	)

	ErrVoucherMinimum = NewBaseError(
		http.StatusBadRequest,
		"VOUCHER_MINIMUM_NOT_MET",
		"Your order does not meet the voucher's minimum amount",
		"",
	)

	ErrUnknownDeliveryZone = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_DELIVERY_ZONE",
		"We do not deliver to this zone yet",
		"",
	)

	// Users
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Some fields are missing or invalid",
		"",
	)

	// Image upload
	ErrUnsupportedImageType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_IMAGE_TYPE",
		"Only JPEG, PNG, WEBP and GIF images are accepted",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_TOO_LARGE",
		"The image exceeds the maximum upload size",
		"",
	)

	ErrImageHostFailed = NewBaseError(
		http.StatusBadGateway,
		"IMAGE_HOST_FAILED",
		"The image host did not accept the upload",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong on our side",
		"",
	)
)

// DeliveryActionError reports a failed delivery action, naming the attempted
// action so the dashboard can show what exactly did not happen.
type DeliveryActionError struct {
	action string
	err    error
}

// NewDeliveryActionError creates a delivery action failure carrying its cause.
func NewDeliveryActionError(action string, err error) AppError {
	return &DeliveryActionError{
		action: action,
		err:    err,
	}
}

// Error implements the error interface
func (e *DeliveryActionError) Error() string {
	return errors.Wrapf(e.err, "delivery action %q failed", e.action).Error()
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *DeliveryActionError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DeliveryActionError) HTTPCode() int {
	var appErr AppError
	if errors.As(e.err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *DeliveryActionError) ErrorCode() string {
	return "DELIVERY_ACTION_FAILED"
}

// Message returns the user-friendly error message
func (e *DeliveryActionError) Message() string {
	return "Delivery action " + e.action + " was not applied"
}

// Details returns detailed error information
func (e *DeliveryActionError) Details() string {
	return e.err.Error()
}

// Action returns the attempted action tag.
func (e *DeliveryActionError) Action() string {
	return e.action
}
