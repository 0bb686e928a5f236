// Package i18n provides internationalization support for the storefront service.
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
	// ErrKeyInvalidCredentials indicates invalid login credentials (user not registered or wrong password).
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationFailed indicates the request body failed field validation.
	ErrKeyValidationFailed = "error.validation_failed"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyServiceUnavailable indicates a backing store is unavailable.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyIdempotencyInFlight indicates a retry arrived while the first attempt is still running.
	ErrKeyIdempotencyInFlight = "error.idempotency.in_flight"
	// ErrKeyIdempotencyKeyReused indicates an Idempotency-Key sent with a different request.
	ErrKeyIdempotencyKeyReused = "error.idempotency.key_reused"
)

// Storefront error translation keys.
const (
	ErrKeyCartOwnerRequired    = "error.cart.owner_required"
	ErrKeyCartSessionRequired  = "error.cart.session_required"
	ErrKeyCartUnavailable      = "error.cart.unavailable"
	ErrKeyProductNotFound      = "error.product_not_found"
	ErrKeyCategoryNotFound     = "error.category_not_found"
	ErrKeyInvalidProduct       = "error.invalid_product"
	ErrKeySlugTaken            = "error.slug_taken"
	ErrKeyOrderNotFound        = "error.order_not_found"
	ErrKeyEmptyCart            = "error.order.empty_cart"
	ErrKeyCheckoutIncomplete   = "error.order.checkout_incomplete"
	ErrKeyInvalidStatusChange  = "error.order.invalid_status_transition"
	ErrKeyOutOfStock           = "error.out_of_stock"
	ErrKeyInvalidPricing       = "error.invalid_pricing"
	ErrKeyPricingNotFound      = "error.pricing_not_found"
	ErrKeyInvalidPaymentMethod = "error.invalid_payment_method"
	ErrKeyAccountExists        = "error.account_exists"
	ErrKeyAccountNotFound      = "error.account_not_found"
)

// Cart notice translation keys. Messages may reference {name}, {quantity}
// and {available}.
const (
	NoticeKeyAdded       = "cart.notice.added"
	NoticeKeyIncremented = "cart.notice.incremented"
	NoticeKeyUpdated     = "cart.notice.updated"
	NoticeKeyRemoved     = "cart.notice.removed"
	NoticeKeyCleared     = "cart.notice.cleared"
	NoticeKeyMerged      = "cart.notice.merged"
	NoticeKeyOutOfStock  = "cart.notice.out_of_stock"
	NoticeKeyUnchanged   = "cart.notice.unchanged"
)

// Success message translation keys.
const (
	// SuccessKeyOrderPlaced indicates an order was placed.
	SuccessKeyOrderPlaced = "success.order_placed"
)
