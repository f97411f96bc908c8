package budget_test

import (
	"testing"

	"github.com/moneymap/moneymap-backend/internal/domain/budget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertsNoneWhenFullyFunded(t *testing.T) {
	totals := budget.Totals{
		BillsNeeded:         500,
		BillsDeposited:      500,
		InvestmentNeeded:    200,
		InvestmentDeposited: 200,
		SpendingTotal:       100,
	}

	assert.Empty(t, budget.Alerts(totals, "USD"))
}

func TestAlertsBillsShortage(t *testing.T) {
	totals := budget.Totals{BillsNeeded: 500, BillsDeposited: 300}

	alerts := budget.Alerts(totals, "USD")

	require.Len(t, alerts, 1)
	assert.Equal(t, "Bills Shortage", alerts[0].Title)
	assert.Equal(t, "You're short by USD 200.00 for bills this month", alerts[0].Message)
	assert.Equal(t, budget.SeverityShortage, alerts[0].Severity)
}

func TestAlertsInvestmentShortage(t *testing.T) {
	totals := budget.Totals{InvestmentNeeded: 400, InvestmentDeposited: 150}

	alerts := budget.Alerts(totals, "EUR")

	require.Len(t, alerts, 1)
	assert.Equal(t, "Investment Shortage", alerts[0].Title)
	assert.Equal(t, "You're short by EUR 250.00 for investments", alerts[0].Message)
	assert.Equal(t, budget.SeverityWarning, alerts[0].Severity)
}

func TestAlertsHighSpending(t *testing.T) {
	totals := budget.Totals{BillsNeeded: 300, BillsDeposited: 300, SpendingTotal: 450}

	alerts := budget.Alerts(totals, "USD")

	require.Len(t, alerts, 1)
	assert.Equal(t, "High Spending Alert", alerts[0].Title)
	assert.Equal(t, "Your spending (USD 450.00) exceeds bills needed", alerts[0].Message)
	assert.Equal(t, budget.SeverityWarning, alerts[0].Severity)
}

func TestAlertsOrderIsFixed(t *testing.T) {
	totals := budget.Totals{
		BillsNeeded:         500,
		BillsDeposited:      100,
		InvestmentNeeded:    200,
		InvestmentDeposited: 50,
		SpendingTotal:       900,
	}

	alerts := budget.Alerts(totals, "USD")

	require.Len(t, alerts, 3)
	assert.Equal(t, "Bills Shortage", alerts[0].Title)
	assert.Equal(t, "Investment Shortage", alerts[1].Title)
	assert.Equal(t, "High Spending Alert", alerts[2].Title)
}

func TestAlertsSpendingEqualToBillsIsNotFlagged(t *testing.T) {
	totals := budget.Totals{BillsNeeded: 300, BillsDeposited: 300, SpendingTotal: 300}

	assert.Empty(t, budget.Alerts(totals, "USD"))
}
