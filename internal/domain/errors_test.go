package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDepositLimitError(t *testing.T) {
	err := fmt.Errorf("deposit: %w", &DepositLimitError{Ceiling: decimal.RequireFromString("50")})

	assert.True(t, errors.Is(err, ErrDepositLimitExceeded))
	assert.False(t, errors.Is(err, ErrInvalidAmount))

	var limitErr *DepositLimitError
	assert.True(t, errors.As(err, &limitErr))
	assert.Equal(t, "50.00", limitErr.Ceiling.StringFixed(2))
	assert.Contains(t, err.Error(), "at most 50.00")
}

func TestProfile_FullName(t *testing.T) {
	tests := []struct {
		name     string
		profile  Profile
		expected string
	}{
		{name: "First and last name", profile: Profile{FirstName: "Ash", LastName: "Kethcum"}, expected: "Ash Kethcum"},
		{name: "Only first name", profile: Profile{FirstName: "Mr"}, expected: "Mr"},
		{name: "Empty", profile: Profile{}, expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.profile.FullName())
		})
	}
}

func TestContract_Active(t *testing.T) {
	assert.True(t, Contract{Status: ContractStatusNew}.Active())
	assert.True(t, Contract{Status: ContractStatusInProgress}.Active())
	assert.False(t, Contract{Status: ContractStatusTerminated}.Active())
}
