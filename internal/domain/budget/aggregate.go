// Package budget holds the pure computations of the engine: monthly totals,
// leftover, alerts and the leftover allocation across investment
// categories. Everything here is a function of an immutable snapshot, safe
// to call from any number of goroutines.
package budget

import "github.com/moneymap/moneymap-backend/internal/domain/models"

// Totals is the arithmetic sum of each tracked field across the three
// entry collections. Empty collections sum to zero.
type Totals struct {
	BillsNeeded         float64 `json:"billsNeeded"`
	BillsDeposited      float64 `json:"billsDeposited"`
	InvestmentNeeded    float64 `json:"investmentNeeded"`
	InvestmentDeposited float64 `json:"investmentDeposited"`
	SpendingTotal       float64 `json:"spendingTotal"`
}

func Aggregate(user *models.User) Totals {
	var totals Totals
	for _, bill := range user.Bills {
		totals.BillsNeeded += bill.AmountNeeded
		totals.BillsDeposited += bill.AmountDeposited
	}
	for _, investment := range user.Investments {
		totals.InvestmentNeeded += investment.AmountNeeded
		totals.InvestmentDeposited += investment.AmountDeposited
	}
	for _, spending := range user.Spendings {
		totals.SpendingTotal += spending.AmountDeposited
	}
	return totals
}

// TotalExpenses is the monthly obligation: bills needed plus investment
// needed plus everything already spent.
func (t Totals) TotalExpenses() float64 {
	return t.BillsNeeded + t.InvestmentNeeded + t.SpendingTotal
}

// Leftover is the discretionary amount: salary minus total obligations,
// clamped at zero. Callers that need the raw deficit must compute
// salary - TotalExpenses themselves.
func Leftover(salary float64, totals Totals) float64 {
	leftover := salary - totals.TotalExpenses()
	if leftover < 0 {
		return 0
	}
	return leftover
}

// UtilizationPercent is total expenses as a percentage of salary, 0 when
// there is no salary to divide by.
func UtilizationPercent(salary float64, totals Totals) float64 {
	if salary <= 0 {
		return 0
	}
	return totals.TotalExpenses() / salary * 100
}
