package budget_test

import (
	"testing"

	"github.com/moneymap/moneymap-backend/internal/domain/budget"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	user := &models.User{
		Bills: []models.Bill{
			{Id: "b1", Title: "Rent", AmountNeeded: 1200, AmountDeposited: 800},
			{Id: "b2", Title: "Utilities", AmountNeeded: 150, AmountDeposited: 150},
		},
		Investments: []models.Investment{
			{Id: "i1", Title: "Index fund", AmountNeeded: 500, AmountDeposited: 200},
		},
		Spendings: []models.Spending{
			{Id: "s1", Title: "Groceries", AmountDeposited: 320},
			{Id: "s2", Title: "Dining", AmountDeposited: 80},
		},
	}

	totals := budget.Aggregate(user)

	assert.Equal(t, 1350.0, totals.BillsNeeded)
	assert.Equal(t, 950.0, totals.BillsDeposited)
	assert.Equal(t, 500.0, totals.InvestmentNeeded)
	assert.Equal(t, 200.0, totals.InvestmentDeposited)
	assert.Equal(t, 400.0, totals.SpendingTotal)
	assert.Equal(t, 2250.0, totals.TotalExpenses())
}

func TestAggregateEmptyCollections(t *testing.T) {
	totals := budget.Aggregate(&models.User{})

	assert.Zero(t, totals.BillsNeeded)
	assert.Zero(t, totals.BillsDeposited)
	assert.Zero(t, totals.InvestmentNeeded)
	assert.Zero(t, totals.InvestmentDeposited)
	assert.Zero(t, totals.SpendingTotal)
	assert.Zero(t, totals.TotalExpenses())
}

func TestLeftover(t *testing.T) {
	tests := []struct {
		name     string
		salary   float64
		totals   budget.Totals
		expected float64
	}{
		{
			name:     "expenses above salary clamp to zero",
			salary:   1000,
			totals:   budget.Totals{BillsNeeded: 300, InvestmentNeeded: 200, SpendingTotal: 600},
			expected: 0,
		},
		{
			name:     "expenses below salary leave the difference",
			salary:   1000,
			totals:   budget.Totals{BillsNeeded: 200, InvestmentNeeded: 100, SpendingTotal: 100},
			expected: 600,
		},
		{
			name:     "expenses equal salary leave nothing",
			salary:   500,
			totals:   budget.Totals{BillsNeeded: 500},
			expected: 0,
		},
		{
			name:     "zero salary with expenses clamps to zero",
			salary:   0,
			totals:   budget.Totals{SpendingTotal: 50},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, budget.Leftover(tt.salary, tt.totals))
		})
	}
}

func TestUtilizationPercent(t *testing.T) {
	totals := budget.Totals{BillsNeeded: 300, InvestmentNeeded: 200, SpendingTotal: 250}

	assert.Equal(t, 75.0, budget.UtilizationPercent(1000, totals))
	assert.Equal(t, 0.0, budget.UtilizationPercent(0, totals))
	assert.Equal(t, 0.0, budget.UtilizationPercent(-100, totals))
}

func TestUtilizationPercentCanExceedHundred(t *testing.T) {
	totals := budget.Totals{BillsNeeded: 1500}

	assert.Equal(t, 150.0, budget.UtilizationPercent(1000, totals))
}
