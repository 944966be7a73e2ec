//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"client-scheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMarkAndIs(t *testing.T) {
	sentinel := errs.New("record not found")

	t.Run("mark is visible to errs.Is", func(t *testing.T) {
		err := errs.Mark(errs.New("load user 42"), sentinel)

		assert.True(t, errs.Is(err, sentinel))
		// Marks live outside the Unwrap chain; the stdlib cannot see them.
		assert.False(t, errors.Is(err, sentinel))
	})

	t.Run("mark survives wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("load user 42"), sentinel), "login")

		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("bare sentinel matches itself", func(t *testing.T) {
		assert.True(t, errs.Is(sentinel, sentinel))
	})

	t.Run("mark on nil returns the mark", func(t *testing.T) {
		assert.True(t, errs.Is(errs.Mark(nil, sentinel), sentinel))
	})
}
