//go:build unit

package money_test

import (
	"testing"

	"ezrent/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	_, err := money.New(-1)
	require.ErrorIs(t, err, money.ErrNegativeAmount)
	_, err = money.New(money.MaxAmount + 1)
	require.ErrorIs(t, err, money.ErrAmountTooLarge)

	m := money.FromCents(7500)
	assert.Equal(t, int64(2250), m.Percent(30).Cents())
	assert.Equal(t, int64(5250), m.Sub(m.Percent(30)).Cents())
	assert.Equal(t, "75.00", m.String())

	// 30% of 0.05 is 0.015, rounded half up to 0.02
	assert.Equal(t, int64(2), money.FromCents(5).Percent(30).Cents())
	assert.Equal(t, int64(22500), money.FromCents(7500).Mul(3).Cents())
}
