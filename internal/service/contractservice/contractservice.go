package contractservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/policy"
)

//go:generate mockgen -source=contractservice.go -destination=mock_contractservice.go -package=contractservice

type ContractRepo interface {
	GetContract(ctx context.Context, id int) (*domain.Contract, error)
	ListActiveContractsForUser(ctx context.Context, userID int) ([]domain.Contract, error)
}

type JobRepo interface {
	ListUnpaidJobsForContracts(ctx context.Context, contractIDs []int) ([]domain.Job, error)
}

type Service struct {
	contracts ContractRepo
	jobs      JobRepo
}

func New(contracts ContractRepo, jobs JobRepo) *Service {
	return &Service{
		contracts: contracts,
		jobs:      jobs,
	}
}

func (s *Service) GetContract(ctx context.Context, callerID, id int) (*domain.Contract, error) {
	contract, err := s.contracts.GetContract(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get contract %d: %w", id, err)
	}
	if contract == nil {
		return nil, fmt.Errorf("contract %d: %w", id, domain.ErrNotFound)
	}
	if !policy.CanViewContract(callerID, contract) {
		return nil, domain.ErrForbidden
	}
	return contract, nil
}

// ListContracts returns the caller's non-terminated contracts.
func (s *Service) ListContracts(ctx context.Context, callerID int) ([]domain.Contract, error) {
	contracts, err := s.contracts.ListActiveContractsForUser(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list contracts of %d: %w", callerID, err)
	}
	if contracts == nil {
		contracts = []domain.Contract{}
	}
	return contracts, nil
}

// ListUnpaidJobs returns unpaid jobs on the caller's active contracts.
func (s *Service) ListUnpaidJobs(ctx context.Context, callerID int) ([]domain.Job, error) {
	contracts, err := s.ListContracts(ctx, callerID)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(contracts))
	for _, c := range contracts {
		ids = append(ids, c.ID)
	}
	jobs, err := s.jobs.ListUnpaidJobsForContracts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list unpaid jobs of %d: %w", callerID, err)
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}
