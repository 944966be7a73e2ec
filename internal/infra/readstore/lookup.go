package readstore

import (
	"context"

	"client-scheduler/internal/infra"
	"client-scheduler/internal/infra/db"
	"client-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type LookupReadStore struct {
	db db.DBTX
}

func NewLookupReadStore(db db.DBTX) *LookupReadStore {
	return &LookupReadStore{db: db}
}

func (r *LookupReadStore) FindContacts(ctx context.Context) ([]*queries.ContactView, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name, email FROM contacts ORDER BY name")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contacts", err)
	}
	defer rows.Close()

	var result []*queries.ContactView
	for rows.Next() {
		var v queries.ContactView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan contact row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate contact rows", err)
	}

	return result, nil
}

func (r *LookupReadStore) FindCountries(ctx context.Context) ([]*queries.CountryView, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name FROM countries ORDER BY name")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list countries", err)
	}
	defer rows.Close()

	var result []*queries.CountryView
	for rows.Next() {
		var v queries.CountryView
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan country row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate country rows", err)
	}

	return result, nil
}

func (r *LookupReadStore) FindDivisionsByCountry(ctx context.Context, countryID uuid.UUID) ([]*queries.DivisionView, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name, country_id FROM first_level_divisions WHERE country_id = $1 ORDER BY name", countryID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list divisions", err)
	}
	defer rows.Close()

	var result []*queries.DivisionView
	for rows.Next() {
		var v queries.DivisionView
		if err := rows.Scan(&v.ID, &v.Name, &v.CountryID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan division row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate division rows", err)
	}

	return result, nil
}

func (r *LookupReadStore) FindUsers(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.db.Query(ctx, "SELECT id, username, role FROM users WHERE is_active ORDER BY username")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var result []*queries.UserView
	for rows.Next() {
		var v queries.UserView
		if err := rows.Scan(&v.ID, &v.Username, &v.Role); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}

	return result, nil
}

func (r *LookupReadStore) DivisionExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM first_level_divisions WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check division existence", err)
	}
	return exists, nil
}
