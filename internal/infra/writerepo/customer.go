package writerepo

import (
	"context"

	"client-scheduler/internal/domain/customer"
	"client-scheduler/internal/infra"
	"client-scheduler/internal/infra/db"

	"github.com/google/uuid"
)

type CustomerRepository struct {
	db db.DBTX
}

func NewCustomerRepository(db db.DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, `
INSERT INTO customers (id, name, address, postal_code, phone, division_id)
VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID(), c.Name(), c.Address(), c.PostalCode(), c.Phone(), c.DivisionID(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err)
	}
	return c.ID(), nil
}

func (r *CustomerRepository) Update(ctx context.Context, tx db.DBTX, c *customer.Customer) (int64, error) {
	tag, err := tx.Exec(ctx, `
UPDATE customers
SET name = $2, address = $3, postal_code = $4, phone = $5, division_id = $6, updated_at = now()
WHERE id = $1`,
		c.ID(), c.Name(), c.Address(), c.PostalCode(), c.Phone(), c.DivisionID(),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update customer", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CustomerRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete customer", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CustomerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check customer existence", err)
	}
	return exists, nil
}
