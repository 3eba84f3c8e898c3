package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/gigledger/internal/domain"
)

func TestCanPayJob(t *testing.T) {
	contract := &domain.Contract{ID: 1, ClientID: 1, ContractorID: 5}

	assert.True(t, CanPayJob(1, contract))
	assert.False(t, CanPayJob(5, contract), "contractor cannot pay")
	assert.False(t, CanPayJob(2, contract), "stranger cannot pay")
	assert.False(t, CanPayJob(1, nil))
	assert.False(t, CanPayJob(3, &domain.Contract{ID: 2, ClientID: 3, ContractorID: 3}), "self contract")
}

func TestCanDeposit(t *testing.T) {
	assert.True(t, CanDeposit(1, 1))
	assert.False(t, CanDeposit(1, 2))
}

func TestCanHoldDeposit(t *testing.T) {
	tests := []struct {
		name     string
		profile  *domain.Profile
		expected bool
	}{
		{name: "Client", profile: &domain.Profile{Type: domain.ProfileTypeClient}, expected: true},
		{name: "Contractor", profile: &domain.Profile{Type: domain.ProfileTypeContractor}, expected: false},
		{name: "Missing profile", profile: nil, expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanHoldDeposit(tt.profile))
		})
	}
}

func TestCanViewContract(t *testing.T) {
	contract := &domain.Contract{ID: 1, ClientID: 1, ContractorID: 5}

	assert.True(t, CanViewContract(1, contract))
	assert.True(t, CanViewContract(5, contract))
	assert.False(t, CanViewContract(3, contract))
	assert.False(t, CanViewContract(1, nil))
}
