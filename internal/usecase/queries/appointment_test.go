//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"client-scheduler/internal/pkg/clock"
	"client-scheduler/internal/usecase/queries"
	"client-scheduler/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppointmentStore struct {
	items []*queries.AppointmentListItem

	gotUserID uuid.UUID
	gotFrom   time.Time
	gotTo     time.Time
}

func (s *stubAppointmentStore) FindByID(context.Context, uuid.UUID) (*queries.AppointmentView, error) {
	return nil, nil
}

func (s *stubAppointmentStore) FindAll(context.Context) ([]*queries.AppointmentListItem, error) {
	return s.items, nil
}

func (s *stubAppointmentStore) FindByCustomerID(context.Context, uuid.UUID) ([]*queries.AppointmentListItem, error) {
	return s.items, nil
}

func (s *stubAppointmentStore) FindByUserStartingBetween(_ context.Context, userID uuid.UUID, from, to time.Time) ([]*queries.AppointmentListItem, error) {
	s.gotUserID = userID
	s.gotFrom = from
	s.gotTo = to
	return s.items, nil
}

func TestAppointmentQueries_ListUpcoming(t *testing.T) {
	now := time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()

	view := builder.NewAppointmentBuilder().BuildView()
	item := &queries.AppointmentListItem{
		ID:           view.ID,
		Title:        view.Title,
		Type:         view.Type,
		Start:        view.Start,
		End:          view.End,
		CustomerID:   view.CustomerID,
		CustomerName: view.CustomerName,
		ContactName:  view.ContactName,
	}

	store := &stubAppointmentStore{items: []*queries.AppointmentListItem{item}}
	q := queries.NewAppointmentQueries(store, clock.NewMockClock(now))

	got, err := q.ListUpcoming(context.Background(), userID, 15*time.Minute)
	require.NoError(t, err)

	// A minute of slack behind now, the alert window ahead of it.
	assert.Equal(t, userID, store.gotUserID)
	assert.Equal(t, now.Add(-time.Minute), store.gotFrom)
	assert.Equal(t, now.Add(15*time.Minute), store.gotTo)

	if diff := cmp.Diff([]*queries.AppointmentListItem{item}, got); diff != "" {
		t.Errorf("unexpected items (-want +got):\n%s", diff)
	}
}
