package readstore

import (
	"context"

	"brewpoints/internal/infra"
	"brewpoints/internal/infra/db"
	"brewpoints/internal/usecase/queries"
	"brewpoints/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, full_name, role, is_active
		FROM users
		WHERE id = $1`

	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, id).
		Scan(&v.ID, &v.Email, &v.FullName, &v.Role, &v.IsActive)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	return &v, nil
}

func (r *UserReadStore) FindSnapshotByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, email, password_hash, role, is_active
		FROM users
		WHERE email = $1`

	var snap shared.UserSnapshot
	err := r.db.QueryRow(ctx, query, email).
		Scan(&snap.ID, &snap.Email, &snap.PasswordHash, &snap.Role, &snap.IsActive)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &snap, nil
}

// FindAccounts backs the admin user management screen: every customer
// profile with its ledger, zeroed when no purchase has been made yet.
func (r *UserReadStore) FindAccounts(ctx context.Context) ([]*queries.CustomerAccountView, error) {
	const query = `
		SELECT u.id, u.email, u.full_name, u.created_at,
		       COALESCE(l.points, 0), COALESCE(l.total_earned, 0), COALESCE(l.rewards_redeemed, 0)
		FROM users u
		LEFT JOIN loyalty_ledgers l ON l.user_id = u.id
		WHERE u.role = 'customer'
		ORDER BY u.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list accounts", err)
	}
	defer rows.Close()

	views := []*queries.CustomerAccountView{}
	for rows.Next() {
		var v queries.CustomerAccountView
		err := rows.Scan(&v.ID, &v.Email, &v.FullName, &v.CreatedAt,
			&v.Points, &v.TotalEarned, &v.RewardsRedeemed)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan account", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate accounts", err)
	}

	return views, nil
}
