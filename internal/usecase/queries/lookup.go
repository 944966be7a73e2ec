package queries

import (
	"context"

	"github.com/google/uuid"
)

// Reference data: read-only lists used to populate selection fields.
type ContactView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type CountryView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type DivisionView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CountryID uuid.UUID `json:"country_id"`
}

type UserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

type LookupQueries interface {
	ListContacts(ctx context.Context) ([]*ContactView, error)
	ListCountries(ctx context.Context) ([]*CountryView, error)
	ListDivisionsByCountry(ctx context.Context, countryID uuid.UUID) ([]*DivisionView, error)
	ListUsers(ctx context.Context) ([]*UserView, error)
}

type LookupReadStore interface {
	FindContacts(ctx context.Context) ([]*ContactView, error)
	FindCountries(ctx context.Context) ([]*CountryView, error)
	FindDivisionsByCountry(ctx context.Context, countryID uuid.UUID) ([]*DivisionView, error)
	FindUsers(ctx context.Context) ([]*UserView, error)
	DivisionExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type lookupQueriesImpl struct {
	store LookupReadStore
}

func NewLookupQueries(store LookupReadStore) LookupQueries {
	return &lookupQueriesImpl{store: store}
}

func (q *lookupQueriesImpl) ListContacts(ctx context.Context) ([]*ContactView, error) {
	return q.store.FindContacts(ctx)
}

func (q *lookupQueriesImpl) ListCountries(ctx context.Context) ([]*CountryView, error) {
	return q.store.FindCountries(ctx)
}

func (q *lookupQueriesImpl) ListDivisionsByCountry(ctx context.Context, countryID uuid.UUID) ([]*DivisionView, error) {
	return q.store.FindDivisionsByCountry(ctx, countryID)
}

func (q *lookupQueriesImpl) ListUsers(ctx context.Context) ([]*UserView, error) {
	return q.store.FindUsers(ctx)
}
