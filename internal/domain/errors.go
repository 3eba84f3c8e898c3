package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrAlreadyPaid          = errors.New("job already paid")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrDepositLimitExceeded = errors.New("deposit limit exceeded")
	ErrInvalidRange         = errors.New("invalid date range")
	ErrInvalidLimit         = errors.New("invalid limit")
	ErrTransient            = errors.New("transient storage failure")
)

// DepositLimitError carries the ceiling that the rejected deposit exceeded.
type DepositLimitError struct {
	Ceiling decimal.Decimal
}

func (e *DepositLimitError) Error() string {
	return fmt.Sprintf("%s: at most %s may be deposited", ErrDepositLimitExceeded, e.Ceiling.StringFixed(2))
}

func (e *DepositLimitError) Is(target error) bool {
	return target == ErrDepositLimitExceeded
}
