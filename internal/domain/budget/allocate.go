package budget

import (
	"fmt"

	"github.com/moneymap/moneymap-backend/internal/domain/errs"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
)

// Allocation is one category's share of the leftover.
type Allocation struct {
	Category models.InvestmentCategory `json:"category"`
	Amount   float64                   `json:"amount"`
}

// Allocate splits the leftover proportionally: each category receives
// leftover * percentage / 100, independent of the other categories. A zero
// leftover yields all-zero amounts; presenting that as "no funds
// available" is the caller's concern.
func Allocate(leftover float64, categories []models.InvestmentCategory) []Allocation {
	allocations := make([]Allocation, 0, len(categories))
	for _, category := range categories {
		allocations = append(allocations, Allocation{
			Category: category,
			Amount:   leftover * category.Percentage / 100,
		})
	}
	return allocations
}

// ValidateCategories is an opt-in check that the configured percentages
// are each within 0-100 and sum to 100. Nothing in the engine enforces
// this; a list summing to less or more than 100 under- or over-allocates
// the leftover, which some users configure on purpose.
func ValidateCategories(categories []models.InvestmentCategory) error {
	var sum float64
	for _, category := range categories {
		if category.Percentage < 0 || category.Percentage > 100 {
			return errs.NewValidation(fmt.Sprintf("category %q percentage must be between 0 and 100", category.Name))
		}
		sum += category.Percentage
	}
	if sum != 100 {
		return errs.NewValidation(fmt.Sprintf("category percentages sum to %.2f, expected 100", sum))
	}
	return nil
}

// DefaultInvestmentCategories is the category set every new account starts
// with.
func DefaultInvestmentCategories() []models.InvestmentCategory {
	return []models.InvestmentCategory{
		{Id: "1", Name: "Stocks", Percentage: 40, Description: "Equity investments"},
		{Id: "2", Name: "Bonds", Percentage: 30, Description: "Fixed income securities"},
		{Id: "3", Name: "Real Estate", Percentage: 20, Description: "Property investments"},
		{Id: "4", Name: "Crypto", Percentage: 10, Description: "Digital assets"},
		{Id: "5", Name: "Other", Percentage: 0, Description: "Custom investment category"},
	}
}
