package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CustomerView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	PostalCode   string    `json:"postal_code"`
	Phone        string    `json:"phone"`
	DivisionID   uuid.UUID `json:"division_id"`
	DivisionName string    `json:"division_name"`
	CountryName  string    `json:"country_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	ListAll(ctx context.Context) ([]*CustomerView, error)
}

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	FindAll(ctx context.Context) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	store CustomerReadStore
}

func NewCustomerQueries(store CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{store: store}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *customerQueriesImpl) ListAll(ctx context.Context) ([]*CustomerView, error) {
	return q.store.FindAll(ctx)
}
