package commands

import (
	"context"

	"client-scheduler/internal/domain/customer"
	"client-scheduler/internal/pkg/errs"
	"client-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrDivisionNotFound    = errs.New("first-level division not found")
	ErrCustomerValidation  = errs.New("customer validation failed")
	ErrCustomerHasNoRecord = errs.New("customer not found")
)

type CustomerParams struct {
	Name       string
	Address    string
	PostalCode string
	Phone      string
	DivisionID uuid.UUID
}

type CustomerCommands interface {
	Create(ctx context.Context, params CustomerParams) (*queries.CustomerView, error)
	Update(ctx context.Context, id uuid.UUID, params CustomerParams) (*queries.CustomerView, error)
	// Delete removes the customer and all of their appointments in one
	// transaction (appointments reference customers by foreign key).
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerCommandsImpl struct {
	customerRepo    CustomerRepository
	appointmentRepo AppointmentRepository
	lookupStore     queries.LookupReadStore
	customerQueries queries.CustomerQueries
	db              *pgxpool.Pool
}

func NewCustomerCommands(
	customerRepo CustomerRepository,
	appointmentRepo AppointmentRepository,
	lookupStore queries.LookupReadStore,
	customerQueries queries.CustomerQueries,
	db *pgxpool.Pool,
) CustomerCommands {
	return &customerCommandsImpl{
		customerRepo:    customerRepo,
		appointmentRepo: appointmentRepo,
		lookupStore:     lookupStore,
		customerQueries: customerQueries,
		db:              db,
	}
}

func (c *customerCommandsImpl) Create(ctx context.Context, params CustomerParams) (*queries.CustomerView, error) {
	entity, err := c.toEntity(ctx, uuid.Nil, params)
	if err != nil {
		return nil, err
	}

	id, err := c.customerRepo.Create(ctx, c.db, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.customerQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *customerCommandsImpl) Update(ctx context.Context, id uuid.UUID, params CustomerParams) (*queries.CustomerView, error) {
	entity, err := c.toEntity(ctx, id, params)
	if err != nil {
		return nil, err
	}

	rows, err := c.customerRepo.Update(ctx, c.db, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rows == 0 {
		return nil, ErrCustomerHasNoRecord
	}

	view, err := c.customerQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *customerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := c.appointmentRepo.DeleteByCustomerID(ctx, tx, id); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rows, err := c.customerRepo.Delete(ctx, tx, id)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rows == 0 {
		return ErrCustomerHasNoRecord
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *customerCommandsImpl) toEntity(ctx context.Context, id uuid.UUID, params CustomerParams) (*customer.Customer, error) {
	exists, err := c.lookupStore.DivisionExists(ctx, params.DivisionID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !exists {
		return nil, ErrDivisionNotFound
	}

	entity, err := customer.NewCustomer(id, params.Name, params.Address, params.PostalCode, params.Phone, params.DivisionID)
	if err != nil {
		return nil, errs.Mark(err, ErrCustomerValidation)
	}
	return entity, nil
}
