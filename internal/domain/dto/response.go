package dto

import (
	"net/http"
	"time"

	"github.com/kyhorne/coload/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeCheckoutFailed indicates the checkout collaborator call failed.
	ErrCodeCheckoutFailed = "checkout_failed"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// QuoteResponse is the computed price for a set of form values.
//
// @Description Price quote with field-level validation errors
type QuoteResponse struct {
	// Total is the computed price in dollars for the selected term.
	Total float64 `json:"total" example:"24.5"`
	// SavingsPercent compares annualized monthly cost against yearly
	// cost. Omitted when the regular total is zero (undefined).
	SavingsPercent *float64 `json:"savings_percent,omitempty" example:"16.67"`
	// Valid reports whether the form values carry no errors.
	Valid bool `json:"valid"`
	// Errors holds the non-empty field errors keyed by field name.
	Errors map[string]string `json:"errors,omitempty"`
} // @name QuoteResponse

// CheckoutSessionResponse is returned after a checkout session was
// created with the payment provider.
//
// @Description Checkout session handle for the payment redirect
type CheckoutSessionResponse struct {
	// SessionID identifies the session at the payment provider.
	SessionID string `json:"session_id" example:"cs_test_a1b2c3"`
	// URL is the hosted payment page to redirect the user to.
	URL string `json:"url,omitempty" example:"https://checkout.example.com/pay/cs_test_a1b2c3"`
	// ItemCount is the number of billable lines in the submitted cart.
	ItemCount int `json:"item_count" example:"2"`
} // @name CheckoutSessionResponse

// AuditLogsResponse is a page of audit entries for the operator.
//
// @Description Audit trail page, newest first
type AuditLogsResponse struct {
	// Entries holds the matching audit records, newest first.
	Entries []*model.CheckoutLogEntry `json:"entries"`
	// Total is the number of records matching the filter, ignoring
	// pagination.
	Total int64 `json:"total" example:"42"`
} // @name AuditLogsResponse

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data.
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"term: must be Monthly or Yearly"`
	// Details contains field-level error details when present.
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails adds field-level details to the error response.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return ErrCodeCheckoutFailed
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
