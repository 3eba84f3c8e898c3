package contractrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) GetContract(ctx context.Context, id int) (*domain.Contract, error) {
	query := `
        SELECT id, terms, status, client_id, contractor_id
        FROM contracts
        WHERE id = $1
    `
	contract, err := scanContract(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get contract", zap.Int("contractID", id), zap.Error(err))
		return nil, err
	}
	return contract, nil
}

// ListActiveContractsForUser returns the non-terminated contracts where the
// user is either the client or the contractor.
func (r *Repository) ListActiveContractsForUser(ctx context.Context, userID int) ([]domain.Contract, error) {
	query := `
        SELECT id, terms, status, client_id, contractor_id
        FROM contracts
        WHERE (client_id = $1 OR contractor_id = $1) AND status <> 'terminated'
        ORDER BY id
    `
	return r.list(ctx, query, userID)
}

func (r *Repository) ListContractsForUser(ctx context.Context, userID int) ([]domain.Contract, error) {
	query := `
        SELECT id, terms, status, client_id, contractor_id
        FROM contracts
        WHERE client_id = $1 OR contractor_id = $1
        ORDER BY id
    `
	return r.list(ctx, query, userID)
}

func (r *Repository) list(ctx context.Context, query string, userID int) ([]domain.Contract, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list contracts", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			zap.L().Error("can't scan contract row", zap.Error(err))
			return nil, err
		}
		contracts = append(contracts, *contract)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate contract rows", zap.Error(err))
		return nil, err
	}
	return contracts, nil
}

func scanContract(row pgx.Row) (*domain.Contract, error) {
	var contract domain.Contract
	var status string
	err := row.Scan(&contract.ID, &contract.Terms, &status, &contract.ClientID, &contract.ContractorID)
	if err != nil {
		return nil, err
	}
	contract.Status = domain.ContractStatus(status)
	return &contract, nil
}
