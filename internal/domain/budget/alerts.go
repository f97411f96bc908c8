package budget

import "fmt"

type Severity string

const (
	SeverityShortage Severity = "shortage"
	SeverityWarning  Severity = "warning"
)

type Alert struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Alerts derives the ordered alert list from a totals snapshot. The order
// is fixed: bills shortage, investment shortage, high spending. An alert
// whose condition does not hold is omitted entirely.
//
// The high-spending check compares spending against bills needed, not
// against salary. That heuristic comes straight from the product: spending
// more than your bills cost is the signal it wants to flag.
func Alerts(totals Totals, currency string) []Alert {
	var alerts []Alert

	if totals.BillsDeposited < totals.BillsNeeded {
		alerts = append(alerts, Alert{
			Title:    "Bills Shortage",
			Message:  fmt.Sprintf("You're short by %s %.2f for bills this month", currency, totals.BillsNeeded-totals.BillsDeposited),
			Severity: SeverityShortage,
		})
	}

	if totals.InvestmentDeposited < totals.InvestmentNeeded {
		alerts = append(alerts, Alert{
			Title:    "Investment Shortage",
			Message:  fmt.Sprintf("You're short by %s %.2f for investments", currency, totals.InvestmentNeeded-totals.InvestmentDeposited),
			Severity: SeverityWarning,
		})
	}

	if totals.SpendingTotal > totals.BillsNeeded {
		alerts = append(alerts, Alert{
			Title:    "High Spending Alert",
			Message:  fmt.Sprintf("Your spending (%s %.2f) exceeds bills needed", currency, totals.SpendingTotal),
			Severity: SeverityWarning,
		})
	}

	return alerts
}
