package reportrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/pg"
)

// Repository runs the admin aggregates as single GROUP BY statements so each
// report reads one consistent snapshot. Ties on the total go to the lowest
// profile id.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) BestProfession(ctx context.Context, start, end time.Time) (*domain.ContractorEarnings, error) {
	query := `
        SELECT p.id, p.profession, SUM(j.price) AS earned
        FROM jobs j
        JOIN contracts c ON c.id = j.contract_id
        JOIN profiles p ON p.id = c.contractor_id
        WHERE j.paid = TRUE AND j.payment_date >= $1 AND j.payment_date < $2
        GROUP BY p.id, p.profession
        ORDER BY earned DESC, p.id ASC
        LIMIT 1
    `
	var earnings domain.ContractorEarnings
	err := r.db.QueryRow(ctx, query, start, end).Scan(&earnings.ContractorID, &earnings.Profession, &earnings.Earned)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't query best profession", zap.Error(err))
		return nil, err
	}
	return &earnings, nil
}

func (r *Repository) BestClients(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientPayments, error) {
	query := `
        SELECT p.id, p.first_name, p.last_name, SUM(j.price) AS paid
        FROM jobs j
        JOIN contracts c ON c.id = j.contract_id
        JOIN profiles p ON p.id = c.client_id
        WHERE j.paid = TRUE AND j.payment_date >= $1 AND j.payment_date < $2
        GROUP BY p.id, p.first_name, p.last_name
        ORDER BY paid DESC, p.id ASC
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, start, end, limit)
	if err != nil {
		zap.L().Error("can't query best clients", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	clients := make([]domain.ClientPayments, 0)
	for rows.Next() {
		var client domain.ClientPayments
		var profile domain.Profile
		if err := rows.Scan(&client.ClientID, &profile.FirstName, &profile.LastName, &client.Paid); err != nil {
			zap.L().Error("can't scan best client row", zap.Error(err))
			return nil, err
		}
		client.FullName = profile.FullName()
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate best client rows", zap.Error(err))
		return nil, err
	}
	return clients, nil
}
