package model

// Standard error codes for domain operations
const (
	ErrCodeMerchantNotFound = "MERCHANT_NOT_FOUND"
	ErrCodeItemNotFound     = "ITEM_NOT_FOUND"
	ErrCodeCartEmpty        = "CART_EMPTY"
	ErrCodeCartMismatch     = "CART_MERCHANT_MISMATCH"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeBadTransition    = "INVALID_STATUS_TRANSITION"
	ErrCodeReasonRequired   = "CANCEL_REASON_REQUIRED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation surfaced to the caller.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMerchantNotFound = NewDomainError(ErrCodeMerchantNotFound, "Merchant not found")
	ErrItemNotFound     = NewDomainError(ErrCodeItemNotFound, "Item not found")
	ErrOrderNotFound    = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrBadTransition    = NewDomainError(ErrCodeBadTransition, "Order status transition not allowed")
	ErrReasonRequired   = NewDomainError(ErrCodeReasonRequired, "Cancellation requires a reason")
)
