package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ProfileType string

const (
	ProfileTypeClient     ProfileType = "client"
	ProfileTypeContractor ProfileType = "contractor"
)

type ContractStatus string

const (
	ContractStatusNew        ContractStatus = "new"
	ContractStatusInProgress ContractStatus = "in_progress"
	ContractStatusTerminated ContractStatus = "terminated"
)

type Profile struct {
	ID         int             `db:"id"`
	FirstName  string          `db:"first_name"`
	LastName   string          `db:"last_name"`
	Profession string          `db:"profession"`
	Type       ProfileType     `db:"type"`
	Balance    decimal.Decimal `db:"balance"`
}

func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p Profile) IsClient() bool {
	return p.Type == ProfileTypeClient
}

type Contract struct {
	ID           int            `db:"id"`
	Terms        string         `db:"terms"`
	Status       ContractStatus `db:"status"`
	ClientID     int            `db:"client_id"`
	ContractorID int            `db:"contractor_id"`
}

// Active reports whether the contract has not been terminated.
func (c Contract) Active() bool {
	return c.Status != ContractStatusTerminated
}

type Job struct {
	ID          int             `db:"id"`
	ContractID  int             `db:"contract_id"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Paid        bool            `db:"paid"`
	PaymentDate *time.Time      `db:"payment_date"`
}

type PaymentResult struct {
	JobID             int
	Paid              bool
	PaymentDate       time.Time
	ClientBalance     decimal.Decimal
	ContractorBalance decimal.Decimal
}

type DepositResult struct {
	ProfileID int
	Balance   decimal.Decimal
}

// ContractorEarnings is the paid total of a single contractor inside a report window.
type ContractorEarnings struct {
	ContractorID int             `json:"contractor_id"`
	Profession   string          `json:"profession"`
	Earned       decimal.Decimal `json:"earned"`
}

type ClientPayments struct {
	ClientID int             `json:"client_id"`
	FullName string          `json:"full_name"`
	Paid     decimal.Decimal `json:"paid"`
}

type Overview struct {
	BestProfession string           `json:"best_profession"`
	BestClients    []ClientPayments `json:"best_clients"`
}
