// Package i18n provides internationalization support for the coload service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyLoginRequired indicates the operation needs a signed-in user.
	ErrKeyLoginRequired = "error.login_required"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyValidationTerm indicates an unknown billing term.
	ErrKeyValidationTerm = "error.validation.term"
	// ErrKeyFormInvalid indicates the form values carry field errors.
	ErrKeyFormInvalid = "error.form_invalid"
	// ErrKeyEmptyCart indicates no billable line qualified for checkout.
	ErrKeyEmptyCart = "error.empty_cart"
	// ErrKeyCheckoutFailed indicates the payment provider call failed.
	ErrKeyCheckoutFailed = "error.checkout_failed"
	// ErrKeyAuditDisabled indicates the audit trail is not configured.
	ErrKeyAuditDisabled = "error.audit_disabled"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)
