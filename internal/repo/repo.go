package repo

import (
	"github.com/GlebRadaev/gigledger/internal/pg"
	contractrepo "github.com/GlebRadaev/gigledger/internal/repo/contract-repo"
	jobrepo "github.com/GlebRadaev/gigledger/internal/repo/job-repo"
	profilerepo "github.com/GlebRadaev/gigledger/internal/repo/profile-repo"
	reportrepo "github.com/GlebRadaev/gigledger/internal/repo/report-repo"
)

// Repositories share one connection; statements join the transaction the
// TXManager put in the context, if any.
type Repositories struct {
	ProfileRepo  *profilerepo.Repository
	ContractRepo *contractrepo.Repository
	JobRepo      *jobrepo.Repository
	ReportRepo   *reportrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		ProfileRepo:  profilerepo.New(conn),
		ContractRepo: contractrepo.New(conn),
		JobRepo:      jobrepo.New(conn),
		ReportRepo:   reportrepo.New(conn),
	}
}
