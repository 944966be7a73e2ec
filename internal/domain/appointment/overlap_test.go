//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"client-scheduler/internal/domain/appointment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConflict(t *testing.T) {
	base := time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)
	at := func(startMin, endMin int) appointment.Interval {
		return appointment.NewInterval(
			base.Add(time.Duration(startMin)*time.Minute),
			base.Add(time.Duration(endMin)*time.Minute),
		)
	}
	existing := func(iv appointment.Interval) []appointment.ExistingAppointment {
		return []appointment.ExistingAppointment{{ID: uuid.New(), Interval: iv}}
	}

	// Existing appointment occupies [0, 60).
	other := existing(at(0, 60))

	conflicts := []struct {
		name      string
		candidate appointment.Interval
	}{
		{"identical interval", at(0, 60)},
		{"shared start only", at(0, 90)},
		{"shared end only", at(-30, 60)},
		{"start inside", at(30, 90)},
		{"end inside", at(-30, 30)},
		{"candidate contains existing", at(-30, 90)},
		{"existing contains candidate", at(15, 45)},
	}
	for _, tc := range conflicts {
		t.Run("conflict: "+tc.name, func(t *testing.T) {
			got := appointment.FindConflict(tc.candidate, other)
			require.NotNil(t, got)
			assert.Equal(t, other[0].ID, got.ID)
		})
	}

	clear := []struct {
		name      string
		candidate appointment.Interval
	}{
		{"strictly before", at(-120, -60)},
		{"strictly after", at(120, 180)},
		{"ends exactly at existing start", at(-60, 0)},
		{"starts exactly at existing end", at(60, 120)},
	}
	for _, tc := range clear {
		t.Run("clear: "+tc.name, func(t *testing.T) {
			assert.Nil(t, appointment.FindConflict(tc.candidate, other))
		})
	}

	t.Run("no others", func(t *testing.T) {
		assert.Nil(t, appointment.FindConflict(at(0, 60), nil))
	})

	t.Run("returns the first conflicting entry", func(t *testing.T) {
		first := appointment.ExistingAppointment{ID: uuid.New(), Interval: at(0, 60)}
		second := appointment.ExistingAppointment{ID: uuid.New(), Interval: at(30, 90)}

		got := appointment.FindConflict(at(30, 60), []appointment.ExistingAppointment{first, second})
		require.NotNil(t, got)
		assert.Equal(t, first.ID, got.ID)
	})

	t.Run("detection is symmetric", func(t *testing.T) {
		// If A conflicts with B, B must conflict with A, whichever is the
		// candidate and whichever is already stored.
		pairs := [][2]appointment.Interval{
			{at(0, 60), at(30, 90)},
			{at(0, 60), at(-30, 30)},
			{at(0, 60), at(15, 45)},
			{at(0, 60), at(-30, 90)},
			{at(0, 60), at(0, 45)},
			{at(0, 60), at(15, 60)},
			{at(0, 60), at(60, 120)},
			{at(0, 60), at(-60, 0)},
			{at(0, 60), at(120, 180)},
		}
		for _, p := range pairs {
			ab := appointment.FindConflict(p[0], existing(p[1])) != nil
			ba := appointment.FindConflict(p[1], existing(p[0])) != nil
			assert.Equal(t, ab, ba, "asymmetric result for %v vs %v", p[0], p[1])
		}
	})
}
