package writerepo

import (
	"context"
	"time"

	"client-scheduler/internal/domain/appointment"
	"client-scheduler/internal/infra"
	"client-scheduler/internal/infra/db"

	"github.com/google/uuid"
)

type AppointmentRepository struct {
	db db.DBTX
}

func NewAppointmentRepository(db db.DBTX) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, tx db.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, `
INSERT INTO appointments (id, title, description, location, type, start_time, end_time, customer_id, user_id, contact_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID(), a.Title(), a.Description(), a.Location(), a.Type(),
		a.Interval().Start(), a.Interval().End(),
		a.CustomerID(), a.UserID(), a.ContactID(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return a.ID(), nil
}

func (r *AppointmentRepository) Update(ctx context.Context, tx db.DBTX, a *appointment.Appointment) (int64, error) {
	tag, err := tx.Exec(ctx, `
UPDATE appointments
SET title = $2, description = $3, location = $4, type = $5,
    start_time = $6, end_time = $7, customer_id = $8, user_id = $9, contact_id = $10,
    updated_at = now()
WHERE id = $1`,
		a.ID(), a.Title(), a.Description(), a.Location(), a.Type(),
		a.Interval().Start(), a.Interval().End(),
		a.CustomerID(), a.UserID(), a.ContactID(),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update appointment", err)
	}
	return tag.RowsAffected(), nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, "DELETE FROM appointments WHERE id = $1", id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete appointment", err)
	}
	return tag.RowsAffected(), nil
}

func (r *AppointmentRepository) DeleteByCustomerID(ctx context.Context, tx db.DBTX, customerID uuid.UUID) error {
	_, err := tx.Exec(ctx, "DELETE FROM appointments WHERE customer_id = $1", customerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointments by customer", err)
	}
	return nil
}

func (r *AppointmentRepository) FindIntervalsByCustomerID(ctx context.Context, customerID uuid.UUID) ([]appointment.ExistingAppointment, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, start_time, end_time FROM appointments WHERE customer_id = $1", customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load appointment intervals", err)
	}
	defer rows.Close()

	var result []appointment.ExistingAppointment
	for rows.Next() {
		var id uuid.UUID
		var start, end time.Time
		if err := rows.Scan(&id, &start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment interval", err)
		}
		result = append(result, appointment.ExistingAppointment{
			ID:       id,
			Interval: appointment.NewInterval(start, end),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment intervals", err)
	}

	return result, nil
}
