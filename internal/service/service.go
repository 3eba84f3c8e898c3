package service

import (
	"github.com/GlebRadaev/gigledger/internal/handlers/admin"
	"github.com/GlebRadaev/gigledger/internal/handlers/balances"
	"github.com/GlebRadaev/gigledger/internal/handlers/contracts"
	"github.com/GlebRadaev/gigledger/internal/handlers/jobs"
	"github.com/GlebRadaev/gigledger/internal/pg"
	"github.com/GlebRadaev/gigledger/internal/repo"
	"github.com/GlebRadaev/gigledger/internal/service/contractservice"
	"github.com/GlebRadaev/gigledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/gigledger/internal/service/reportservice"
)

type LedgerService interface {
	jobs.Service
	balances.Service
}

type ContractService interface {
	contracts.Service
	jobs.ContractService
}

type ReportService interface {
	admin.Service
	jobs.ReportService
}

type Services struct {
	LedgerService   LedgerService
	ContractService ContractService
	ReportService   ReportService
}

// New wires the services. reportCache may be nil to disable report caching.
func New(repo *repo.Repositories, txManager pg.TXManager, reportCache reportservice.Cache) *Services {
	return &Services{
		LedgerService:   ledgerservice.New(txManager, repo.ProfileRepo, repo.ContractRepo, repo.JobRepo),
		ContractService: contractservice.New(repo.ContractRepo, repo.JobRepo),
		ReportService:   reportservice.New(repo.ReportRepo, repo.ContractRepo, repo.JobRepo, reportCache),
	}
}
