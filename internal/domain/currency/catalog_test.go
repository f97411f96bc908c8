package currency_test

import (
	"testing"

	"github.com/moneymap/moneymap-backend/internal/domain/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	usd, ok := currency.Lookup("USD")
	require.True(t, ok)
	assert.Equal(t, "$", usd.Symbol)
	assert.Equal(t, "US Dollar", usd.Name)

	_, ok = currency.Lookup("ZZZ")
	assert.False(t, ok)
}

func TestIsValid(t *testing.T) {
	assert.True(t, currency.IsValid("USD"))
	assert.True(t, currency.IsValid("EUR"))
	assert.False(t, currency.IsValid("usd"))
	assert.False(t, currency.IsValid(""))
	assert.False(t, currency.IsValid("ZZZ"))
}

func TestAllReturnsACopy(t *testing.T) {
	first := currency.All()
	require.NotEmpty(t, first)

	first[0].Code = "mutated"

	second := currency.All()
	assert.NotEqual(t, "mutated", second[0].Code)
}

func TestAllCodesAreUniqueThreeLetter(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range currency.All() {
		assert.Len(t, c.Code, 3)
		assert.False(t, seen[c.Code], "duplicate code %s", c.Code)
		seen[c.Code] = true
	}
}
