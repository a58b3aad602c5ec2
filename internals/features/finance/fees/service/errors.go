// file: internals/features/finance/fees/service/errors.go
package service

import "errors"

// Sentinel errors returned by the ledger service. Controllers dispatch on
// these with errors.Is to pick the HTTP status.
var (
	ErrSchoolNotFound  = errors.New("school not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrHeadNotFound    = errors.New("fee head not found")
	ErrInvoiceNotFound = errors.New("invoice not found")

	ErrEmptyHeadName     = errors.New("fee head name is required")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrEmptyHeadList     = errors.New("at least one fee head is required")
	ErrNonPositiveAmount = errors.New("payment amount must be positive")
)

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSchoolNotFound) ||
		errors.Is(err, ErrStudentNotFound) ||
		errors.Is(err, ErrHeadNotFound) ||
		errors.Is(err, ErrInvoiceNotFound)
}

// IsValidation reports whether err is one of the input-validation sentinels.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyHeadName) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrEmptyHeadList) ||
		errors.Is(err, ErrNonPositiveAmount)
}
