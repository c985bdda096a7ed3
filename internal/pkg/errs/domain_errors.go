package errs

import "errors"

// Error classes surfaced to callers. Specific errors elsewhere are marked with one of these.
var (
	ErrNotFound         = errors.New("not found")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrVoucherInvalid   = errors.New("voucher invalid")
	ErrStateConflict    = errors.New("state conflict")
	ErrValidation       = errors.New("validation error")

	ErrIdempotencyInProgress = errors.New("idempotency in progress")
	ErrIdempotencyMismatch   = errors.New("idempotency key reused with different request")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
