package readstore

import (
	"context"

	"client-scheduler/internal/infra"
	"client-scheduler/internal/infra/db"
	"client-scheduler/internal/pkg/pgconv"
	"client-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

const customerViewQuery = `
SELECT c.id, c.name, c.address, c.postal_code, c.phone,
       c.division_id, d.name AS division_name, co.name AS country_name,
       c.created_at, c.updated_at
FROM customers c
JOIN first_level_divisions d ON d.id = c.division_id
JOIN countries co ON co.id = d.country_id
`

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(db db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: db}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row := r.db.QueryRow(ctx, customerViewQuery+"WHERE c.id = $1", id)

	var v queries.CustomerView
	err := row.Scan(
		&v.ID, &v.Name, &v.Address, &v.PostalCode, &v.Phone,
		&v.DivisionID, &v.DivisionName, &v.CountryName,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}

	return &v, nil
}

func (r *CustomerReadStore) FindAll(ctx context.Context) ([]*queries.CustomerView, error) {
	rows, err := r.db.Query(ctx, customerViewQuery+"ORDER BY c.name")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var result []*queries.CustomerView
	for rows.Next() {
		var v queries.CustomerView
		err := rows.Scan(
			&v.ID, &v.Name, &v.Address, &v.PostalCode, &v.Phone,
			&v.DivisionID, &v.DivisionName, &v.CountryName,
			&v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customer rows", err)
	}

	return result, nil
}
