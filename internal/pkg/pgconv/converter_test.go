//go:build unit

package pgconv

import (
	"math"
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumeric(t *testing.T) {
	t.Run("round trip keeps scale", func(t *testing.T) {
		d := decimal.RequireFromString("1234.50")
		got, err := DecimalFromNumeric(DecimalToNumeric(d))
		require.NoError(t, err)
		assert.True(t, d.Equal(got))
		assert.Equal(t, "1234.50", got.StringFixed(2))
	})

	t.Run("rejects invalid numerics", func(t *testing.T) {
		for _, n := range []pgtype.Numeric{
			{},
			{Int: big.NewInt(1), Valid: true, NaN: true},
			{Int: big.NewInt(1), Valid: true, InfinityModifier: pgtype.Infinity},
			{Valid: true},
		} {
			_, err := DecimalFromNumeric(n)
			assert.ErrorIs(t, err, ErrInvalidNumeric)
		}
	})
}

func TestIntToInt32(t *testing.T) {
	v, err := IntToInt32(42)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)

	_, err = IntToInt32(math.MaxInt32 + 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
