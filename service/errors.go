package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeMissingPriorTransaction = "missing_prior_transaction"
	ErrCodeDuplicateComplete       = "duplicate_complete"
	ErrCodeProfileNotFound         = "recurring_profile_not_found"
	ErrCodeInvalidCard             = "invalid_card"
	ErrCodeGatewayFailure          = "gateway_failure"
	ErrCodePersistence             = "persistence_failure"
	ErrCodeInternalError           = "internal_error"
)
