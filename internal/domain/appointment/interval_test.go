//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"client-scheduler/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterval(t *testing.T) {
	start := time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	t.Run("reversed intervals are representable", func(t *testing.T) {
		// Ordering is judged by the validator, not the constructor, so a
		// reversed interval can be carried to produce the right rejection.
		iv := appointment.NewInterval(end, start)
		assert.Equal(t, end, iv.Start())
		assert.Equal(t, start, iv.End())
	})

	t.Run("zone conversion preserves the instants", func(t *testing.T) {
		eastern, err := time.LoadLocation("US/Eastern")
		require.NoError(t, err)

		iv := appointment.NewInterval(start, end)
		converted := iv.InZone(eastern)

		assert.True(t, iv.SameInstants(converted))
		assert.Equal(t, eastern, converted.Start().Location())
		assert.Equal(t, 5, converted.Start().Hour()) // 09:00 UTC is 05:00 EDT
	})
}
