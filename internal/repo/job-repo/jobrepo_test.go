package jobrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/gigledger/internal/domain"
)

var jobColumns = []string{"id", "contract_id", "description", "price", "paid", "payment_date"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)
	return repo, mockDB
}

func TestRepository_GetJob(t *testing.T) {
	repo, mock := NewMock(t)
	paidAt := time.Date(2020, 8, 15, 19, 11, 26, 0, time.UTC)

	tests := []struct {
		name      string
		forUpdate bool
		mockSetup func()
		expectErr bool
		result    *domain.Job
	}{
		{
			name: "Unpaid job",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, contract_id, description, price, paid, payment_date FROM jobs WHERE id = $1`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(jobColumns).AddRow(1, 2, "work", "200.00", false, nil))
			},
			result: &domain.Job{ID: 1, ContractID: 2, Description: "work", Price: decimal.RequireFromString("200")},
		},
		{
			name:      "Paid job locked for update",
			forUpdate: true,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, contract_id, description, price, paid, payment_date FROM jobs WHERE id = $1 FOR UPDATE`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(jobColumns).AddRow(1, 2, "work", "200.00", true, &paidAt))
			},
			result: &domain.Job{ID: 1, ContractID: 2, Description: "work", Price: decimal.RequireFromString("200"), Paid: true, PaymentDate: &paidAt},
		},
		{
			name: "Job does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, contract_id, description, price, paid, payment_date FROM jobs WHERE id = $1`)).
					WithArgs(1).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, contract_id, description, price, paid, payment_date FROM jobs WHERE id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			var result *domain.Job
			var err error
			if tt.forUpdate {
				result, err = repo.GetJobForUpdate(context.Background(), 1)
			} else {
				result, err = repo.GetJob(context.Background(), 1)
			}
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			if tt.result == nil {
				assert.Nil(t, result)
				return
			}
			assert.Equal(t, tt.result.ID, result.ID)
			assert.Equal(t, tt.result.Paid, result.Paid)
			assert.True(t, tt.result.Price.Equal(result.Price))
			assert.Equal(t, tt.result.PaymentDate, result.PaymentDate)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkPaid(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE jobs SET paid = TRUE, payment_date = $1, updated_at = NOW() WHERE id = $2 AND paid = FALSE`)
	paidAt := time.Now()

	t.Run("Job marked paid", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(paidAt, 1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.MarkPaid(context.Background(), 1, paidAt))
	})

	t.Run("Job already paid", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(paidAt, 1).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.MarkPaid(context.Background(), 1, paidAt), domain.ErrAlreadyPaid)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(paidAt, 1).WillReturnError(errors.New("database error"))
		err := repo.MarkPaid(context.Background(), 1, paidAt)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrAlreadyPaid)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListUnpaidJobsForContracts(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, contract_id, description, price, paid, payment_date FROM jobs WHERE contract_id = ANY($1) AND paid = FALSE ORDER BY id`)

	t.Run("No contracts skips the query", func(t *testing.T) {
		jobs, err := repo.ListUnpaidJobsForContracts(context.Background(), nil)
		assert.NoError(t, err)
		assert.Nil(t, jobs)
	})

	t.Run("Unpaid jobs", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs([]int{2, 3}).
			WillReturnRows(pgxmock.NewRows(jobColumns).
				AddRow(2, 2, "work", "201.00", false, nil).
				AddRow(3, 3, "work", "202.00", false, nil))

		jobs, err := repo.ListUnpaidJobsForContracts(context.Background(), []int{2, 3})
		assert.NoError(t, err)
		assert.Len(t, jobs, 2)
		assert.Equal(t, 3, jobs[1].ContractID)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SumUnpaidJobsForContracts(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT COALESCE(SUM(price), 0) FROM jobs WHERE contract_id = ANY($1) AND paid = FALSE`)

	tests := []struct {
		name        string
		contractIDs []int
		mockSetup   func()
		expectErr   bool
		expected    string
	}{
		{
			name:        "Two unpaid jobs",
			contractIDs: []int{2, 3},
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs([]int{2, 3}).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow("200.00"))
			},
			expected: "200",
		},
		{
			name:        "No active contracts",
			contractIDs: []int{},
			mockSetup:   func() {},
			expected:    "0",
		},
		{
			name:        "Database error",
			contractIDs: []int{2},
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs([]int{2}).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			total, err := repo.SumUnpaidJobsForContracts(context.Background(), tt.contractIDs)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(total), "got %s", total)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SumPaidJobsForContractsInRange(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT COALESCE(SUM(price), 0) FROM jobs WHERE contract_id = ANY($1) AND paid = TRUE AND payment_date >= $2 AND payment_date < $3`)
	start := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(query).WithArgs([]int{1, 2}, start, end).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow("442.00"))

	total, err := repo.SumPaidJobsForContractsInRange(context.Background(), []int{1, 2}, start, end)
	assert.NoError(t, err)
	assert.Equal(t, "442.00", total.StringFixed(2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
