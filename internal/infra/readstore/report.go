package readstore

import (
	"context"
	"time"

	"client-scheduler/internal/infra"
	"client-scheduler/internal/infra/db"
	"client-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReportReadStore aggregates in SQL; the rows come back already grouped so
// handlers never fold data in memory.
type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(db db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: db}
}

func (r *ReportReadStore) AppointmentTotals(ctx context.Context) ([]*queries.AppointmentTotal, error) {
	rows, err := r.db.Query(ctx, `
SELECT EXTRACT(MONTH FROM start_time)::int AS month, type, COUNT(*) AS total
FROM appointments
GROUP BY month, type
ORDER BY month, type`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate appointment totals", err)
	}
	defer rows.Close()

	var result []*queries.AppointmentTotal
	for rows.Next() {
		var month int
		var item queries.AppointmentTotal
		if err := rows.Scan(&month, &item.Type, &item.Total); err != nil {
			return nil, infra.WrapRepoErr("failed to scan totals row", err)
		}
		item.Month = time.Month(month)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate totals rows", err)
	}

	return result, nil
}

func (r *ReportReadStore) CustomersByCountry(ctx context.Context) ([]*queries.CountryCustomerCount, error) {
	rows, err := r.db.Query(ctx, `
SELECT co.name, COUNT(c.id) AS total
FROM countries co
JOIN first_level_divisions d ON d.country_id = co.id
JOIN customers c ON c.division_id = d.id
GROUP BY co.name
ORDER BY total DESC, co.name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate customers by country", err)
	}
	defer rows.Close()

	var result []*queries.CountryCustomerCount
	for rows.Next() {
		var item queries.CountryCustomerCount
		if err := rows.Scan(&item.CountryName, &item.Total); err != nil {
			return nil, infra.WrapRepoErr("failed to scan country count row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate country count rows", err)
	}

	return result, nil
}

func (r *ReportReadStore) FindByContactID(ctx context.Context, contactID uuid.UUID) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, appointmentListQuery+"WHERE a.contact_id = $1 ORDER BY a.start_time", contactID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contact schedule", err)
	}
	return scanAppointmentList(rows)
}
