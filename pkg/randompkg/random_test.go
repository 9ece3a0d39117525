package randompkg

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestIntBetween(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := IntBetween(3, 5)
		require.GreaterOrEqual(t, n, int32(3))
		require.LessOrEqual(t, n, int32(5))
	}
}

func TestCredentials(t *testing.T) {
	require.Len(t, CardNumber(), 16)
	require.Len(t, PIN(), 4)
	require.Regexp(t, `^ACC\d{9}$`, AccountID())
	require.Regexp(t, `^[A-Z]{8}$`, String(8))
}

func TestMoneyAmountBetween(t *testing.T) {
	min, max := decimal.NewFromInt(10), decimal.NewFromInt(20)

	for i := 0; i < 100; i++ {
		got := MoneyAmountBetween(10, 20)
		require.True(t, got.GreaterThanOrEqual(min), got.String())
		require.True(t, got.LessThanOrEqual(max), got.String())
		require.True(t, got.Equal(got.Round(2)), got.String())
	}
}
