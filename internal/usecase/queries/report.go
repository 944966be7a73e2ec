package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AppointmentTotal is one row of the totals report: how many appointments of
// a given type fall in a given calendar month.
type AppointmentTotal struct {
	Month time.Month `json:"month"`
	Type  string     `json:"type"`
	Total int64      `json:"total"`
}

type CountryCustomerCount struct {
	CountryName string `json:"country_name"`
	Total       int64  `json:"total"`
}

type ReportQueries interface {
	AppointmentTotals(ctx context.Context) ([]*AppointmentTotal, error)
	CustomersByCountry(ctx context.Context) ([]*CountryCustomerCount, error)
	ContactSchedule(ctx context.Context, contactID uuid.UUID) ([]*AppointmentListItem, error)
}

type ReportReadStore interface {
	AppointmentTotals(ctx context.Context) ([]*AppointmentTotal, error)
	CustomersByCountry(ctx context.Context) ([]*CountryCustomerCount, error)
	FindByContactID(ctx context.Context, contactID uuid.UUID) ([]*AppointmentListItem, error)
}

type reportQueriesImpl struct {
	store ReportReadStore
}

func NewReportQueries(store ReportReadStore) ReportQueries {
	return &reportQueriesImpl{store: store}
}

func (q *reportQueriesImpl) AppointmentTotals(ctx context.Context) ([]*AppointmentTotal, error) {
	return q.store.AppointmentTotals(ctx)
}

func (q *reportQueriesImpl) CustomersByCountry(ctx context.Context) ([]*CountryCustomerCount, error) {
	return q.store.CustomersByCountry(ctx)
}

func (q *reportQueriesImpl) ContactSchedule(ctx context.Context, contactID uuid.UUID) ([]*AppointmentListItem, error) {
	return q.store.FindByContactID(ctx, contactID)
}
