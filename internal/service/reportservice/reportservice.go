package reportservice

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/gigledger/internal/cache"
	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/metrics"
	"github.com/GlebRadaev/gigledger/internal/pg"
	"github.com/GlebRadaev/gigledger/pkg/daterange"
)

//go:generate mockgen -source=reportservice.go -destination=mock_reportservice.go -package=reportservice

const (
	reportBestProfession = "best-profession"
	reportBestClients    = "best-clients"
)

type Repo interface {
	BestProfession(ctx context.Context, start, end time.Time) (*domain.ContractorEarnings, error)
	BestClients(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientPayments, error)
}

type ContractRepo interface {
	ListContractsForUser(ctx context.Context, userID int) ([]domain.Contract, error)
}

type JobRepo interface {
	SumPaidJobsForContractsInRange(ctx context.Context, contractIDs []int, start, end time.Time) (decimal.Decimal, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// Service answers the read-only analytics over paid jobs. Every window is
// [start, end) for every report.
type Service struct {
	repo      Repo
	contracts ContractRepo
	jobs      JobRepo
	cache     Cache
}

// New builds the service. cache may be nil, in which case every report hits
// the store.
func New(repo Repo, contracts ContractRepo, jobs JobRepo, cache Cache) *Service {
	return &Service{
		repo:      repo,
		contracts: contracts,
		jobs:      jobs,
		cache:     cache,
	}
}

// BestProfession returns the profession of the contractor who earned the most
// in the window, or "" when nothing was paid.
func (s *Service) BestProfession(ctx context.Context, r daterange.Range) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	defer observe(reportBestProfession, time.Now())

	var profession string
	key := cache.Key(reportBestProfession, r.Key())
	if s.cached(ctx, key, &profession) {
		return profession, nil
	}

	earnings, err := s.repo.BestProfession(ctx, r.Start, r.End)
	if err != nil {
		return "", storageError("best profession", err)
	}
	if earnings != nil {
		profession = earnings.Profession
	}
	s.store(ctx, key, profession)
	return profession, nil
}

// BestClients returns up to limit clients ordered by the amount they paid in
// the window, highest first.
func (s *Service) BestClients(ctx context.Context, r daterange.Range, limit int) ([]domain.ClientPayments, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidLimit, limit)
	}
	defer observe(reportBestClients, time.Now())

	var clients []domain.ClientPayments
	key := cache.Key(reportBestClients, r.Key(), strconv.Itoa(limit))
	if s.cached(ctx, key, &clients) {
		return clients, nil
	}

	clients, err := s.repo.BestClients(ctx, r.Start, r.End, limit)
	if err != nil {
		return nil, storageError("best clients", err)
	}
	s.store(ctx, key, clients)
	return clients, nil
}

// Overview runs both admin reports concurrently.
func (s *Service) Overview(ctx context.Context, r daterange.Range, limit int) (*domain.Overview, error) {
	var overview domain.Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profession, err := s.BestProfession(gctx, r)
		overview.BestProfession = profession
		return err
	})
	g.Go(func() error {
		clients, err := s.BestClients(gctx, r, limit)
		overview.BestClients = clients
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}

// PaidTotal sums the jobs paid in the window across all contracts of the
// profile, on either side of them.
func (s *Service) PaidTotal(ctx context.Context, profileID int, r daterange.Range) (decimal.Decimal, error) {
	if err := r.Validate(); err != nil {
		return decimal.Zero, err
	}
	contracts, err := s.contracts.ListContractsForUser(ctx, profileID)
	if err != nil {
		return decimal.Zero, storageError("list contracts", err)
	}
	ids := make([]int, 0, len(contracts))
	for _, c := range contracts {
		ids = append(ids, c.ID)
	}
	total, err := s.jobs.SumPaidJobsForContractsInRange(ctx, ids, r.Start, r.End)
	if err != nil {
		return decimal.Zero, storageError("sum paid jobs", err)
	}
	return total, nil
}

func (s *Service) cached(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		zap.L().Warn("report cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if found {
		metrics.ReportCacheTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.ReportCacheTotal.WithLabelValues("miss").Inc()
	}
	return found
}

func (s *Service) store(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		zap.L().Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func observe(report string, started time.Time) {
	metrics.ReportDuration.WithLabelValues(report).Observe(time.Since(started).Seconds())
}

func storageError(op string, err error) error {
	if pg.IsRetryable(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrTransient, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
