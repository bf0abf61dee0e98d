package transaction

import "errors"

var (
	ErrNotFound         = errors.New("transaction not found")
	ErrMissingUsername  = errors.New("username is required")
	ErrAmountTooSmall   = errors.New("amount must be at least 0.01")
	ErrCategoryMismatch = errors.New("category does not match transaction kind")
)
