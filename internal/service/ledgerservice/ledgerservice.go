package ledgerservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/pg"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type ProfileRepo interface {
	GetProfile(ctx context.Context, id int) (*domain.Profile, error)
	GetProfilesForUpdate(ctx context.Context, ids []int) (map[int]*domain.Profile, error)
	UpdateBalance(ctx context.Context, id int, expected, next decimal.Decimal) error
}

type ContractRepo interface {
	GetContract(ctx context.Context, id int) (*domain.Contract, error)
	ListActiveContractsForUser(ctx context.Context, userID int) ([]domain.Contract, error)
}

type JobRepo interface {
	GetJobForUpdate(ctx context.Context, id int) (*domain.Job, error)
	MarkPaid(ctx context.Context, id int, paidAt time.Time) error
	SumUnpaidJobsForContracts(ctx context.Context, contractIDs []int) (decimal.Decimal, error)
}

// Service owns every mutation of the ledger: job payments and client deposits.
type Service struct {
	txManager pg.TXManager
	profiles  ProfileRepo
	contracts ContractRepo
	jobs      JobRepo
	now       func() time.Time
}

func New(txManager pg.TXManager, profiles ProfileRepo, contracts ContractRepo, jobs JobRepo) *Service {
	return &Service{
		txManager: txManager,
		profiles:  profiles,
		contracts: contracts,
		jobs:      jobs,
		now:       time.Now,
	}
}

// resultLabel names the outcome of a ledger operation for metrics.
func resultLabel(err error, success string) string {
	switch {
	case err == nil:
		return success
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAlreadyPaid):
		return "already_paid"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrDepositLimitExceeded):
		return "limit_exceeded"
	case errors.Is(err, domain.ErrTransient):
		return "transient"
	default:
		return "error"
	}
}

func isRejection(err error) bool {
	switch resultLabel(err, "") {
	case "error", "transient":
		return false
	}
	return true
}

func contractIDs(contracts []domain.Contract) []int {
	ids := make([]int, 0, len(contracts))
	for _, c := range contracts {
		ids = append(ids, c.ID)
	}
	return ids
}
