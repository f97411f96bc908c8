package budget_test

import (
	"testing"

	"github.com/moneymap/moneymap-backend/internal/domain/budget"
	"github.com/moneymap/moneymap-backend/internal/domain/errs"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateDefaultCategories(t *testing.T) {
	allocations := budget.Allocate(600, budget.DefaultInvestmentCategories())

	require.Len(t, allocations, 5)
	assert.Equal(t, "Stocks", allocations[0].Category.Name)
	assert.Equal(t, 240.0, allocations[0].Amount)
	assert.Equal(t, "Bonds", allocations[1].Category.Name)
	assert.Equal(t, 180.0, allocations[1].Amount)
	assert.Equal(t, "Real Estate", allocations[2].Category.Name)
	assert.Equal(t, 120.0, allocations[2].Amount)
	assert.Equal(t, "Crypto", allocations[3].Category.Name)
	assert.Equal(t, 60.0, allocations[3].Amount)
	assert.Equal(t, "Other", allocations[4].Category.Name)
	assert.Equal(t, 0.0, allocations[4].Amount)
}

func TestAllocateZeroLeftover(t *testing.T) {
	allocations := budget.Allocate(0, budget.DefaultInvestmentCategories())

	require.Len(t, allocations, 5)
	for _, allocation := range allocations {
		assert.Zero(t, allocation.Amount)
	}
}

func TestAllocateEmptyCategories(t *testing.T) {
	allocations := budget.Allocate(500, nil)

	assert.NotNil(t, allocations)
	assert.Empty(t, allocations)
}

func TestAllocateDoesNotNormalizePercentages(t *testing.T) {
	categories := []models.InvestmentCategory{
		{Id: "1", Name: "Stocks", Percentage: 50},
		{Id: "2", Name: "Bonds", Percentage: 30},
	}

	allocations := budget.Allocate(1000, categories)

	require.Len(t, allocations, 2)
	assert.Equal(t, 500.0, allocations[0].Amount)
	assert.Equal(t, 300.0, allocations[1].Amount)
}

func TestValidateCategories(t *testing.T) {
	assert.NoError(t, budget.ValidateCategories(budget.DefaultInvestmentCategories()))

	err := budget.ValidateCategories([]models.InvestmentCategory{
		{Id: "1", Name: "Stocks", Percentage: 60},
		{Id: "2", Name: "Bonds", Percentage: 30},
	})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	err = budget.ValidateCategories([]models.InvestmentCategory{
		{Id: "1", Name: "Stocks", Percentage: 150},
	})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestDefaultInvestmentCategories(t *testing.T) {
	categories := budget.DefaultInvestmentCategories()

	require.Len(t, categories, 5)

	var sum float64
	for _, category := range categories {
		sum += category.Percentage
	}
	assert.Equal(t, 100.0, sum)
}
