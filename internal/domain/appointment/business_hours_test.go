//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"client-scheduler/internal/domain/appointment"
	"client-scheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T) appointment.BusinessWindow {
	t.Helper()
	w, err := appointment.NewBusinessWindow("US/Eastern", "08:00", "22:00")
	require.NoError(t, err)
	return w
}

func TestNewBusinessWindow(t *testing.T) {
	// Construction errors carry the sentinel as a mark, so they are tested
	// with errs.Is rather than the stdlib-backed ErrorIs.
	t.Run("unknown zone", func(t *testing.T) {
		_, err := appointment.NewBusinessWindow("Mars/Olympus", "08:00", "22:00")
		assert.True(t, errs.Is(err, appointment.ErrInvalidZone))
	})

	t.Run("unparseable bound", func(t *testing.T) {
		_, err := appointment.NewBusinessWindow("US/Eastern", "8am", "22:00")
		assert.True(t, errs.Is(err, appointment.ErrInvalidWindow))
	})

	t.Run("start not before end", func(t *testing.T) {
		_, err := appointment.NewBusinessWindow("US/Eastern", "22:00", "08:00")
		assert.True(t, errs.Is(err, appointment.ErrInvalidWindow))
	})
}

func TestBusinessWindow_Check(t *testing.T) {
	w := mustWindow(t)
	day := func(hour, minute int) time.Time {
		return time.Date(2026, 4, 15, hour, minute, 0, 0, w.Location())
	}
	interval := func(start, end time.Time) appointment.Interval {
		return appointment.NewInterval(start, end)
	}

	cases := []struct {
		name   string
		iv     appointment.Interval
		reason appointment.Reason // zero value means accepted
	}{
		{name: "fully inside", iv: interval(day(9, 0), day(10, 0))},
		{name: "start at open", iv: interval(day(8, 0), day(9, 0))},
		{name: "end at close", iv: interval(day(21, 0), day(22, 0))},
		{name: "whole window", iv: interval(day(8, 0), day(22, 0))},
		{name: "start before open", iv: interval(day(7, 59), day(9, 0)), reason: appointment.ReasonOutsideBusinessHours},
		// Asymmetric bounds: a start at the close is rejected even though an
		// end at the close is allowed.
		{name: "start at close", iv: interval(day(22, 0), day(22, 30)), reason: appointment.ReasonOutsideBusinessHours},
		{name: "end past close", iv: interval(day(21, 0), day(22, 1)), reason: appointment.ReasonOutsideBusinessHours},
		{name: "entirely before open", iv: interval(day(5, 0), day(6, 0)), reason: appointment.ReasonOutsideBusinessHours},
		{
			name:   "crosses midnight",
			iv:     interval(day(21, 0), day(9, 0).AddDate(0, 0, 1)),
			reason: appointment.ReasonSpansMultipleDays,
		},
		{
			name:   "24h apart at the same clock time",
			iv:     interval(day(9, 0), day(9, 0).AddDate(0, 0, 1)),
			reason: appointment.ReasonSpansMultipleDays,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rej := w.Check(tc.iv)
			if tc.reason == "" {
				assert.Nil(t, rej)
				return
			}
			require.NotNil(t, rej)
			assert.Equal(t, tc.reason, rej.Reason)
		})
	}

	t.Run("UTC interval is judged on its Eastern wall-clock time", func(t *testing.T) {
		// 23:00 UTC on the 15th is 19:00 Eastern the same day: inside hours.
		iv := interval(
			time.Date(2026, 4, 15, 23, 0, 0, 0, time.UTC),
			time.Date(2026, 4, 16, 0, 0, 0, 0, time.UTC),
		)
		assert.Nil(t, w.Check(iv))
	})

	t.Run("UTC interval that lands after close is rejected", func(t *testing.T) {
		// 02:30 UTC on the 16th is 22:30 Eastern on the 15th.
		iv := interval(
			time.Date(2026, 4, 16, 2, 30, 0, 0, time.UTC),
			time.Date(2026, 4, 16, 3, 0, 0, 0, time.UTC),
		)
		rej := w.Check(iv)
		require.NotNil(t, rej)
		assert.Equal(t, appointment.ReasonOutsideBusinessHours, rej.Reason)
	})
}
