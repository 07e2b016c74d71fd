package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeEmptyOrder      = "EMPTY_ORDER"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodePricelessItem   = "PRICELESS_ITEM"
	ErrCodeTotalMismatch   = "TOTAL_MISMATCH"
	ErrCodeInvalidPayment  = "INVALID_PAYMENT"
)

// Domain errors for business logic
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
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrEmptyOrder      = NewDomainError(ErrCodeEmptyOrder, "Order must contain at least one item")
	ErrMissingField    = NewDomainError(ErrCodeMissingField, "Address, email, phone and payment are required")
	ErrPricelessItem   = NewDomainError(ErrCodePricelessItem, "Priceless items cannot be ordered")
	ErrTotalMismatch   = NewDomainError(ErrCodeTotalMismatch, "Order total does not match item prices")
	ErrInvalidPayment  = NewDomainError(ErrCodeInvalidPayment, "Payment must be card or cash")
)
