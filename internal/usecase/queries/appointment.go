package queries

import (
	"context"
	"time"

	"client-scheduler/internal/pkg/clock"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type AppointmentView struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	ContactID    uuid.UUID `json:"contact_id"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AppointmentListItem struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	ContactName  string    `json:"contact_name"`
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListAll(ctx context.Context) ([]*AppointmentListItem, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*AppointmentListItem, error)
	// ListUpcoming returns the user's appointments starting within the next
	// `within` duration (a just-started appointment up to a minute old counts).
	ListUpcoming(ctx context.Context, userID uuid.UUID, within time.Duration) ([]*AppointmentListItem, error)
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindAll(ctx context.Context) ([]*AppointmentListItem, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*AppointmentListItem, error)
	FindByUserStartingBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*AppointmentListItem, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
	clock clock.Clock
}

func NewAppointmentQueries(store AppointmentReadStore, clock clock.Clock) AppointmentQueries {
	return &appointmentQueriesImpl{store: store, clock: clock}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *appointmentQueriesImpl) ListAll(ctx context.Context) ([]*AppointmentListItem, error) {
	return q.store.FindAll(ctx)
}

func (q *appointmentQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*AppointmentListItem, error) {
	return q.store.FindByCustomerID(ctx, customerID)
}

func (q *appointmentQueriesImpl) ListUpcoming(ctx context.Context, userID uuid.UUID, within time.Duration) ([]*AppointmentListItem, error) {
	now := q.clock.Now()
	return q.store.FindByUserStartingBetween(ctx, userID, now.Add(-time.Minute), now.Add(within))
}
