//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"client-scheduler/internal/domain/appointment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewAppointment(t *testing.T) {
	customerID := uuid.New()
	iv := appointment.NewInterval(
		time.Date(2026, 4, 15, 13, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 15, 14, 0, 0, 0, time.UTC),
	)

	t.Run("generates id and trims fields on create", func(t *testing.T) {
		a := appointment.NewAppointment(appointment.Candidate{
			CustomerID:  customerID,
			ContactID:   uuid.New(),
			UserID:      uuid.New(),
			Title:       "  Planning session  ",
			Description: "Q2 roadmap",
			Location:    "Room 4",
			Type:        "Planning",
			Interval:    iv,
		})

		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, "Planning session", a.Title())
		assert.Equal(t, customerID, a.CustomerID())
		assert.True(t, a.Interval().SameInstants(iv))
	})

	t.Run("keeps id on edit", func(t *testing.T) {
		id := uuid.New()
		a := appointment.NewAppointment(appointment.Candidate{
			ID:          &id,
			CustomerID:  customerID,
			ContactID:   uuid.New(),
			UserID:      uuid.New(),
			Title:       "Planning session",
			Description: "Q2 roadmap",
			Location:    "Room 4",
			Type:        "Planning",
			Interval:    iv,
		})

		assert.Equal(t, id, a.ID())
	})
}
