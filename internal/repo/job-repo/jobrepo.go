package jobrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetJob(ctx context.Context, id int) (*domain.Job, error) {
	query := `
        SELECT id, contract_id, description, price, paid, payment_date
        FROM jobs
        WHERE id = $1
    `
	return r.get(ctx, query, id)
}

// GetJobForUpdate reads the job and holds its row lock until the surrounding
// transaction ends.
func (r *Repository) GetJobForUpdate(ctx context.Context, id int) (*domain.Job, error) {
	query := `
        SELECT id, contract_id, description, price, paid, payment_date
        FROM jobs
        WHERE id = $1
        FOR UPDATE
    `
	return r.get(ctx, query, id)
}

func (r *Repository) get(ctx context.Context, query string, id int) (*domain.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get job", zap.Int("jobID", id), zap.Error(err))
		return nil, err
	}
	return job, nil
}

// MarkPaid flips an unpaid job to paid. A job that is already paid is left
// untouched and domain.ErrAlreadyPaid is returned.
func (r *Repository) MarkPaid(ctx context.Context, id int, paidAt time.Time) error {
	query := `
        UPDATE jobs
        SET paid = TRUE, payment_date = $1, updated_at = NOW()
        WHERE id = $2 AND paid = FALSE
    `
	tag, err := r.db.Exec(ctx, query, paidAt, id)
	if err != nil {
		zap.L().Error("failed to mark job paid", zap.Int("jobID", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyPaid
	}
	return nil
}

func (r *Repository) ListUnpaidJobsForContracts(ctx context.Context, contractIDs []int) ([]domain.Job, error) {
	if len(contractIDs) == 0 {
		return nil, nil
	}
	query := `
        SELECT id, contract_id, description, price, paid, payment_date
        FROM jobs
        WHERE contract_id = ANY($1) AND paid = FALSE
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, contractIDs)
	if err != nil {
		zap.L().Error("can't list unpaid jobs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			zap.L().Error("can't scan job row", zap.Error(err))
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate job rows", zap.Error(err))
		return nil, err
	}
	return jobs, nil
}

func (r *Repository) SumUnpaidJobsForContracts(ctx context.Context, contractIDs []int) (decimal.Decimal, error) {
	if len(contractIDs) == 0 {
		return decimal.Zero, nil
	}
	query := `
        SELECT COALESCE(SUM(price), 0)
        FROM jobs
        WHERE contract_id = ANY($1) AND paid = FALSE
    `
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, contractIDs).Scan(&total); err != nil {
		zap.L().Error("can't sum unpaid jobs", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

// SumPaidJobsForContractsInRange sums jobs paid within [start, end).
func (r *Repository) SumPaidJobsForContractsInRange(ctx context.Context, contractIDs []int, start, end time.Time) (decimal.Decimal, error) {
	if len(contractIDs) == 0 {
		return decimal.Zero, nil
	}
	query := `
        SELECT COALESCE(SUM(price), 0)
        FROM jobs
        WHERE contract_id = ANY($1) AND paid = TRUE
          AND payment_date >= $2 AND payment_date < $3
    `
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, contractIDs, start, end).Scan(&total); err != nil {
		zap.L().Error("can't sum paid jobs", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(&job.ID, &job.ContractID, &job.Description, &job.Price, &job.Paid, &job.PaymentDate)
	if err != nil {
		return nil, err
	}
	return &job, nil
}
