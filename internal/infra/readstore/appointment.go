package readstore

import (
	"context"
	"time"

	"client-scheduler/internal/infra"
	"client-scheduler/internal/infra/db"
	"client-scheduler/internal/pkg/pgconv"
	"client-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const appointmentViewQuery = `
SELECT a.id, a.title, a.description, a.location, a.type,
       a.start_time, a.end_time,
       a.customer_id, c.name AS customer_name,
       a.contact_id, ct.name AS contact_name, ct.email AS contact_email,
       a.user_id, u.username,
       a.created_at, a.updated_at
FROM appointments a
JOIN customers c ON c.id = a.customer_id
JOIN contacts ct ON ct.id = a.contact_id
JOIN users u ON u.id = a.user_id
`

const appointmentListQuery = `
SELECT a.id, a.title, a.type, a.start_time, a.end_time,
       a.customer_id, c.name AS customer_name, ct.name AS contact_name
FROM appointments a
JOIN customers c ON c.id = a.customer_id
JOIN contacts ct ON ct.id = a.contact_id
`

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(db db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: db}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row := r.db.QueryRow(ctx, appointmentViewQuery+"WHERE a.id = $1", id)

	var v queries.AppointmentView
	err := row.Scan(
		&v.ID, &v.Title, &v.Description, &v.Location, &v.Type,
		&v.Start, &v.End,
		&v.CustomerID, &v.CustomerName,
		&v.ContactID, &v.ContactName, &v.ContactEmail,
		&v.UserID, &v.Username,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	return &v, nil
}

func (r *AppointmentReadStore) FindAll(ctx context.Context) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, appointmentListQuery+"ORDER BY a.start_time")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	return scanAppointmentList(rows)
}

func (r *AppointmentReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, appointmentListQuery+"WHERE a.customer_id = $1 ORDER BY a.start_time", customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by customer", err)
	}
	return scanAppointmentList(rows)
}

func (r *AppointmentReadStore) FindByUserStartingBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx,
		appointmentListQuery+"WHERE a.user_id = $1 AND a.start_time > $2 AND a.start_time <= $3 ORDER BY a.start_time",
		userID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming appointments", err)
	}
	return scanAppointmentList(rows)
}

func scanAppointmentList(rows pgx.Rows) ([]*queries.AppointmentListItem, error) {
	defer rows.Close()

	var result []*queries.AppointmentListItem
	for rows.Next() {
		var item queries.AppointmentListItem
		err := rows.Scan(
			&item.ID, &item.Title, &item.Type, &item.Start, &item.End,
			&item.CustomerID, &item.CustomerName, &item.ContactName,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", err)
	}

	return result, nil
}
