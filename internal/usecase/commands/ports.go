package commands

import (
	"context"

	"client-scheduler/internal/domain/appointment"
	"client-scheduler/internal/domain/customer"
	"client-scheduler/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side ports. Repositories take a db.DBTX so commands can run them
// inside a transaction when several writes must land together.

type AppointmentRepository interface {
	Create(ctx context.Context, tx db.DBTX, a *appointment.Appointment) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, a *appointment.Appointment) (int64, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
	DeleteByCustomerID(ctx context.Context, tx db.DBTX, customerID uuid.UUID) error
	// FindIntervalsByCustomerID returns the conflict set for validation: every
	// appointment interval belonging to the customer.
	FindIntervalsByCustomerID(ctx context.Context, customerID uuid.UUID) ([]appointment.ExistingAppointment, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, c *customer.Customer) (int64, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
