//go:build unit

package appointment_test

import (
	"strings"
	"testing"
	"time"

	"client-scheduler/internal/domain/appointment"
	"client-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *appointment.Validator {
	t.Helper()
	window, err := appointment.NewBusinessWindow("US/Eastern", "08:00", "22:00")
	require.NoError(t, err)
	return appointment.NewValidator(window)
}

func eastern(day, hour, minute int) time.Time {
	return time.Date(2026, 4, day, hour, minute, 0, 0, builder.Eastern)
}

func TestValidator_Accepts(t *testing.T) {
	v := newValidator(t)

	t.Run("mid-morning appointment with no others", func(t *testing.T) {
		result := v.Validate(builder.NewAppointmentBuilder().BuildCandidate(), nil)
		assert.True(t, result.OK())
		assert.Nil(t, result.Rejection())
	})

	t.Run("endpoints exactly on the window bounds", func(t *testing.T) {
		c := builder.NewAppointmentBuilder().
			WithTimes(eastern(15, 8, 0), eastern(15, 22, 0)).
			BuildCandidate()
		assert.True(t, v.Validate(c, nil).OK())
	})

	t.Run("back-to-back with an existing appointment", func(t *testing.T) {
		existing := builder.NewAppointmentBuilder().
			WithTimes(eastern(15, 9, 0), eastern(15, 10, 0)).
			BuildExisting()
		c := builder.NewAppointmentBuilder().
			WithTimes(eastern(15, 10, 0), eastern(15, 11, 0)).
			BuildCandidate()

		assert.True(t, v.Validate(c, []appointment.ExistingAppointment{existing}).OK())
	})

	t.Run("times entered in another zone are converted, not rejected", func(t *testing.T) {
		pacific, err := time.LoadLocation("America/Los_Angeles")
		require.NoError(t, err)

		// 05:00 Pacific is 08:00 Eastern, the opening bell.
		c := builder.NewAppointmentBuilder().
			WithTimes(
				time.Date(2026, 4, 15, 5, 0, 0, 0, pacific),
				time.Date(2026, 4, 15, 6, 0, 0, 0, pacific),
			).
			BuildCandidate()
		assert.True(t, v.Validate(c, nil).OK())
	})
}

func TestValidator_RequiredFields(t *testing.T) {
	v := newValidator(t)

	cases := []struct {
		name   string
		mutate func(*builder.AppointmentBuilder)
		field  string
	}{
		{"blank title", func(b *builder.AppointmentBuilder) { b.WithTitle("   ") }, "title"},
		{"blank description", func(b *builder.AppointmentBuilder) { b.WithDescription("") }, "description"},
		{"blank location", func(b *builder.AppointmentBuilder) { b.WithLocation("\t") }, "location"},
		{"blank type", func(b *builder.AppointmentBuilder) { b.WithType("") }, "type"},
		{"missing customer", func(b *builder.AppointmentBuilder) { b.CustomerID = uuid.Nil }, "customer"},
		{"missing contact", func(b *builder.AppointmentBuilder) { b.ContactID = uuid.Nil }, "contact"},
		{"missing user", func(b *builder.AppointmentBuilder) { b.UserID = uuid.Nil }, "user"},
		{"zero start", func(b *builder.AppointmentBuilder) { b.Start = time.Time{} }, "start"},
		{"zero end", func(b *builder.AppointmentBuilder) { b.End = time.Time{} }, "end"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewAppointmentBuilder()
			tc.mutate(b)

			result := v.Validate(b.BuildCandidate(), nil)
			require.False(t, result.OK())
			assert.Equal(t, appointment.ReasonBlankField, result.Rejection().Reason)
			assert.Equal(t, tc.field, result.Rejection().Field)
		})
	}
}

func TestValidator_FieldLengths(t *testing.T) {
	v := newValidator(t)

	atLimit := strings.Repeat("x", appointment.MaxFieldLength)
	overLimit := strings.Repeat("x", appointment.MaxFieldLength+1)

	t.Run("field at the limit passes", func(t *testing.T) {
		c := builder.NewAppointmentBuilder().WithTitle(atLimit).BuildCandidate()
		assert.True(t, v.Validate(c, nil).OK())
	})

	t.Run("multi-byte field at the limit passes", func(t *testing.T) {
		// 50 runes but 100 bytes; the bound counts characters.
		c := builder.NewAppointmentBuilder().
			WithTitle(strings.Repeat("é", appointment.MaxFieldLength)).
			BuildCandidate()
		assert.True(t, v.Validate(c, nil).OK())
	})

	t.Run("multi-byte field over the limit is rejected", func(t *testing.T) {
		c := builder.NewAppointmentBuilder().
			WithTitle(strings.Repeat("é", appointment.MaxFieldLength+1)).
			BuildCandidate()
		result := v.Validate(c, nil)
		require.False(t, result.OK())
		assert.Equal(t, appointment.ReasonFieldTooLong, result.Rejection().Reason)
	})

	for _, tc := range []struct {
		name   string
		mutate func(*builder.AppointmentBuilder)
		field  string
	}{
		{"title over limit", func(b *builder.AppointmentBuilder) { b.WithTitle(overLimit) }, "title"},
		{"description over limit", func(b *builder.AppointmentBuilder) { b.WithDescription(overLimit) }, "description"},
		{"location over limit", func(b *builder.AppointmentBuilder) { b.WithLocation(overLimit) }, "location"},
		{"type over limit", func(b *builder.AppointmentBuilder) { b.WithType(overLimit) }, "type"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewAppointmentBuilder()
			tc.mutate(b)

			result := v.Validate(b.BuildCandidate(), nil)
			require.False(t, result.OK())
			assert.Equal(t, appointment.ReasonFieldTooLong, result.Rejection().Reason)
			assert.Equal(t, tc.field, result.Rejection().Field)
		})
	}
}

func TestValidator_IntervalOrdering(t *testing.T) {
	v := newValidator(t)

	t.Run("start equal to end", func(t *testing.T) {
		at := eastern(15, 9, 0)
		result := v.Validate(builder.NewAppointmentBuilder().WithTimes(at, at).BuildCandidate(), nil)
		require.False(t, result.OK())
		assert.Equal(t, appointment.ReasonStartAfterEnd, result.Rejection().Reason)
	})

	t.Run("reversed interval", func(t *testing.T) {
		c := builder.NewAppointmentBuilder().
			WithTimes(eastern(15, 10, 0), eastern(15, 9, 0)).
			BuildCandidate()
		result := v.Validate(c, nil)
		require.False(t, result.OK())
		assert.Equal(t, appointment.ReasonStartAfterEnd, result.Rejection().Reason)
	})
}

func TestValidator_BusinessHours(t *testing.T) {
	v := newValidator(t)

	t.Run("before opening", func(t *testing.T) {
		c := builder.NewAppointmentBuilder().
			WithTimes(eastern(15, 7, 0), eastern(15, 9, 0)).
			BuildCandidate()
		result := v.Validate(c, nil)
		require.False(t, result.OK())
		assert.Equal(t, appointment.ReasonOutsideBusinessHours, result.Rejection().Reason)
	})

	t.Run("spans two calendar days", func(t *testing.T) {
		c := builder.NewAppointmentBuilder().
			WithTimes(eastern(15, 21, 0), eastern(16, 9, 0)).
			BuildCandidate()
		result := v.Validate(c, nil)
		require.False(t, result.OK())
		assert.Equal(t, appointment.ReasonSpansMultipleDays, result.Rejection().Reason)
	})
}

func TestValidator_Overlap(t *testing.T) {
	v := newValidator(t)

	existingID := uuid.New()
	existing := builder.NewAppointmentBuilder().
		WithID(existingID).
		WithTimes(eastern(15, 9, 0), eastern(15, 10, 0)).
		BuildExisting()
	others := []appointment.ExistingAppointment{existing}

	t.Run("overlapping start reports the conflicting appointment", func(t *testing.T) {
		c := builder.NewAppointmentBuilder().
			WithTimes(eastern(15, 9, 30), eastern(15, 10, 30)).
			BuildCandidate()

		result := v.Validate(c, others)
		require.False(t, result.OK())
		assert.Equal(t, appointment.ReasonOverlap, result.Rejection().Reason)
		assert.Equal(t, existingID, result.Rejection().ConflictID)
	})

	t.Run("editing an appointment never conflicts with itself", func(t *testing.T) {
		c := builder.NewAppointmentBuilder().
			WithID(existingID).
			WithTimes(eastern(15, 9, 0), eastern(15, 10, 0)).
			BuildCandidate()

		assert.True(t, v.Validate(c, others).OK())
	})

	t.Run("editing still conflicts with other appointments", func(t *testing.T) {
		otherID := uuid.New()
		two := []appointment.ExistingAppointment{
			existing,
			builder.NewAppointmentBuilder().
				WithID(otherID).
				WithTimes(eastern(15, 11, 0), eastern(15, 12, 0)).
				BuildExisting(),
		}

		c := builder.NewAppointmentBuilder().
			WithID(existingID).
			WithTimes(eastern(15, 11, 30), eastern(15, 12, 30)).
			BuildCandidate()

		result := v.Validate(c, two)
		require.False(t, result.OK())
		assert.Equal(t, otherID, result.Rejection().ConflictID)
	})
}

func TestValidator_ChecksRunInOrder(t *testing.T) {
	v := newValidator(t)

	// Blank field wins over the interval being outside business hours.
	c := builder.NewAppointmentBuilder().
		WithTitle("").
		WithTimes(eastern(15, 2, 0), eastern(15, 3, 0)).
		BuildCandidate()

	result := v.Validate(c, nil)
	require.False(t, result.OK())
	assert.Equal(t, appointment.ReasonBlankField, result.Rejection().Reason)
}

func TestValidator_Idempotent(t *testing.T) {
	v := newValidator(t)

	c := builder.NewAppointmentBuilder().BuildCandidate()
	first := v.Validate(c, nil)
	second := v.Validate(c, nil)

	assert.Equal(t, first.OK(), second.OK())
	assert.Equal(t, first.Rejection(), second.Rejection())
}
