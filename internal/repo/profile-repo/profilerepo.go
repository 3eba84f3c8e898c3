package profilerepo

import (
	"context"
	"errors"

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

func (r *Repository) GetProfile(ctx context.Context, id int) (*domain.Profile, error) {
	query := `
        SELECT id, first_name, last_name, profession, type, balance
        FROM profiles
        WHERE id = $1
    `
	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get profile", zap.Int("profileID", id), zap.Error(err))
		return nil, err
	}
	return profile, nil
}

// GetProfilesForUpdate locks the given profiles in id order so that two
// payments touching the same pair of profiles cannot deadlock.
func (r *Repository) GetProfilesForUpdate(ctx context.Context, ids []int) (map[int]*domain.Profile, error) {
	query := `
        SELECT id, first_name, last_name, profession, type, balance
        FROM profiles
        WHERE id = ANY($1)
        ORDER BY id
        FOR UPDATE
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("failed to lock profiles", zap.Ints("profileIDs", ids), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	profiles := make(map[int]*domain.Profile, len(ids))
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			zap.L().Error("failed to scan profile row", zap.Error(err))
			return nil, err
		}
		profiles[profile.ID] = profile
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate profile rows", zap.Error(err))
		return nil, err
	}
	return profiles, nil
}

// UpdateBalance sets the balance only if it still equals expected.
// A lost race yields pg.ErrConcurrentUpdate.
func (r *Repository) UpdateBalance(ctx context.Context, id int, expected, next decimal.Decimal) error {
	query := `
        UPDATE profiles
        SET balance = $1, updated_at = NOW()
        WHERE id = $2 AND balance = $3
    `
	tag, err := r.db.Exec(ctx, query, next, id, expected)
	if err != nil {
		zap.L().Error("failed to update balance", zap.Int("profileID", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		zap.L().Warn("balance changed concurrently", zap.Int("profileID", id))
		return pg.ErrConcurrentUpdate
	}
	return nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var profile domain.Profile
	var profileType string
	err := row.Scan(&profile.ID, &profile.FirstName, &profile.LastName, &profile.Profession, &profileType, &profile.Balance)
	if err != nil {
		return nil, err
	}
	profile.Type = domain.ProfileType(profileType)
	return &profile, nil
}
