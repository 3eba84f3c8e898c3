// Package policy holds the authorization rules of the ledger as pure
// predicates over a caller and the resource it acts on.
package policy

import "github.com/GlebRadaev/gigledger/internal/domain"

// CanPayJob allows only the client of the job's contract to pay for it.
// A contract whose client is also its contractor cannot move money.
func CanPayJob(callerID int, contract *domain.Contract) bool {
	return contract != nil && contract.ClientID == callerID && contract.ContractorID != callerID
}

// CanDeposit allows self-service deposits only.
func CanDeposit(callerID, targetID int) bool {
	return callerID == targetID
}

// CanHoldDeposit reports whether the profile may receive a deposit.
// Contractors are funded by payments only.
func CanHoldDeposit(profile *domain.Profile) bool {
	return profile != nil && profile.IsClient()
}

// CanViewContract allows either party of the contract to read it.
func CanViewContract(callerID int, contract *domain.Contract) bool {
	return contract != nil && (contract.ClientID == callerID || contract.ContractorID == callerID)
}
