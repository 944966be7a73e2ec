package readstore

import (
	"context"

	"client-scheduler/internal/infra"
	"client-scheduler/internal/infra/db"
	"client-scheduler/internal/pkg/pgconv"
	"client-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByUsername(ctx context.Context, username string) (*queries.AuthorizedUserView, string, error) {
	row := r.db.QueryRow(ctx,
		"SELECT id, username, role, is_active, password_hash FROM users WHERE username = $1", username)

	var v queries.AuthorizedUserView
	var hash string
	if err := row.Scan(&v.ID, &v.Username, &v.Role, &v.IsActive, &hash); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}

	return &v, hash, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx,
		"SELECT id, username, role, is_active FROM users WHERE id = $1", id)

	var v queries.AuthorizedUserView
	if err := row.Scan(&v.ID, &v.Username, &v.Role, &v.IsActive); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &v, nil
}
