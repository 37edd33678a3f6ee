package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrEntityNotResolved     = errors.New("entity not resolved")

	// Data source outcomes. Anything other than a payload is one of these.
	ErrNoData           = errors.New("no upstream data")
	ErrBudgetExceeded   = errors.New("daily request budget exceeded")
	ErrMalformedPayload = errors.New("malformed upstream payload")
)
