//go:build unit

package customer_test

import (
	"strings"
	"testing"

	"client-scheduler/internal/domain/customer"
	"client-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCustomerBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Acme Corp", actual.Name())
		assert.Equal(t, "123 Main Street", actual.Address())
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		actual, err := builder.NewCustomerBuilder().WithName("  Acme Corp  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", actual.Name())
	})

	t.Run("nil id gets a generated one", func(t *testing.T) {
		b := builder.NewCustomerBuilder()
		b.ID = uuid.Nil
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, actual.ID())
	})

	cases := []struct {
		name   string
		mutate func(*builder.CustomerBuilder)
		errIs  error
	}{
		{
			name:   "blank name",
			mutate: func(b *builder.CustomerBuilder) { b.WithName("   ") },
			errIs:  customer.ErrBlankName,
		},
		{
			name:   "blank address",
			mutate: func(b *builder.CustomerBuilder) { b.WithAddress("") },
			errIs:  customer.ErrBlankAddress,
		},
		{
			name:   "blank postal code",
			mutate: func(b *builder.CustomerBuilder) { b.WithPostalCode("") },
			errIs:  customer.ErrBlankPostalCode,
		},
		{
			name:   "blank phone",
			mutate: func(b *builder.CustomerBuilder) { b.WithPhone("") },
			errIs:  customer.ErrBlankPhone,
		},
		{
			name:   "missing division",
			mutate: func(b *builder.CustomerBuilder) { b.WithDivisionID(uuid.Nil) },
			errIs:  customer.ErrMissingDivision,
		},
		{
			name: "name over limit",
			mutate: func(b *builder.CustomerBuilder) {
				b.WithName(strings.Repeat("x", customer.MaxFieldLength+1))
			},
			errIs: customer.ErrFieldTooLong,
		},
		{
			name: "name at limit",
			mutate: func(b *builder.CustomerBuilder) {
				b.WithName(strings.Repeat("x", customer.MaxFieldLength))
			},
		},
		{
			// 50 runes but 100 bytes; the bound counts characters.
			name: "multi-byte name at limit",
			mutate: func(b *builder.CustomerBuilder) {
				b.WithName(strings.Repeat("é", customer.MaxFieldLength))
			},
		},
		{
			name: "multi-byte name over limit",
			mutate: func(b *builder.CustomerBuilder) {
				b.WithName(strings.Repeat("é", customer.MaxFieldLength+1))
			},
			errIs: customer.ErrFieldTooLong,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewCustomerBuilder()
			tc.mutate(b)

			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
