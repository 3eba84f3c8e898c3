package contractrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/gigledger/internal/domain"
)

var contractColumns = []string{"id", "terms", "status", "client_id", "contractor_id"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)
	return repo, mockDB
}

func TestRepository_GetContract(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, terms, status, client_id, contractor_id FROM contracts WHERE id = $1`)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Contract
	}{
		{
			name: "Contract exists",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).
					WillReturnRows(pgxmock.NewRows(contractColumns).AddRow(1, "bla bla bla", "terminated", 1, 5))
			},
			result: &domain.Contract{ID: 1, Terms: "bla bla bla", Status: domain.ContractStatusTerminated, ClientID: 1, ContractorID: 5},
		},
		{
			name: "Contract does not exist",
			id:   42,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(42).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetContract(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListActiveContractsForUser(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, terms, status, client_id, contractor_id FROM contracts WHERE (client_id = $1 OR contractor_id = $1) AND status <> 'terminated' ORDER BY id`)

	t.Run("Contracts found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(1).
			WillReturnRows(pgxmock.NewRows(contractColumns).
				AddRow(2, "terms", "in_progress", 1, 6).
				AddRow(3, "terms", "new", 1, 7))

		contracts, err := repo.ListActiveContractsForUser(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, []domain.Contract{
			{ID: 2, Terms: "terms", Status: domain.ContractStatusInProgress, ClientID: 1, ContractorID: 6},
			{ID: 3, Terms: "terms", Status: domain.ContractStatusNew, ClientID: 1, ContractorID: 7},
		}, contracts)
	})

	t.Run("No contracts", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(9).WillReturnRows(pgxmock.NewRows(contractColumns))

		contracts, err := repo.ListActiveContractsForUser(context.Background(), 9)
		assert.NoError(t, err)
		assert.Empty(t, contracts)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))

		contracts, err := repo.ListActiveContractsForUser(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, contracts)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListContractsForUser(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, terms, status, client_id, contractor_id FROM contracts WHERE client_id = $1 OR contractor_id = $1 ORDER BY id`)

	mock.ExpectQuery(query).WithArgs(5).
		WillReturnRows(pgxmock.NewRows(contractColumns).AddRow(1, "terms", "terminated", 1, 5))

	contracts, err := repo.ListContractsForUser(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, contracts, 1)
	assert.False(t, contracts[0].Active())
	assert.NoError(t, mock.ExpectationsWereMet())
}
