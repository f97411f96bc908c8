package models

// Bill is a recurring monthly obligation with a due date.
type Bill struct {
	Id              string  `bson:"id" json:"id"`
	Title           string  `bson:"title" json:"title"`
	AmountNeeded    float64 `bson:"amount_needed" json:"amountNeeded"`
	AmountDeposited float64 `bson:"amount_deposited" json:"amountDeposited"`
	DueDate         string  `bson:"due_date" json:"dueDate"` // YYYY-MM-DD
}

// Investment is a savings goal without a due date.
type Investment struct {
	Id              string  `bson:"id" json:"id"`
	Title           string  `bson:"title" json:"title"`
	AmountNeeded    float64 `bson:"amount_needed" json:"amountNeeded"`
	AmountDeposited float64 `bson:"amount_deposited" json:"amountDeposited"`
}

// Spending is an ad-hoc expense entry.
type Spending struct {
	Id              string  `bson:"id" json:"id"`
	Title           string  `bson:"title" json:"title"`
	AmountDeposited float64 `bson:"amount_deposited" json:"amountDeposited"`
}

// InvestmentCategory is one slice of the leftover allocation. Percentages
// are not required to sum to 100 across the configured list.
type InvestmentCategory struct {
	Id          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Percentage  float64 `bson:"percentage" json:"percentage"`
	Description string  `bson:"description" json:"description"`
}

// BillInput is a Bill without an id, as submitted at creation time.
type BillInput struct {
	Title           string  `json:"title"`
	AmountNeeded    float64 `json:"amountNeeded"`
	AmountDeposited float64 `json:"amountDeposited"`
	DueDate         string  `json:"dueDate"`
}

type InvestmentInput struct {
	Title           string  `json:"title"`
	AmountNeeded    float64 `json:"amountNeeded"`
	AmountDeposited float64 `json:"amountDeposited"`
}

type SpendingInput struct {
	Title           string  `json:"title"`
	AmountDeposited float64 `json:"amountDeposited"`
}

// Patch structs model partial updates: only non-nil fields replace the
// stored value, the id never changes.

type BillPatch struct {
	Title           *string  `json:"title"`
	AmountNeeded    *float64 `json:"amountNeeded"`
	AmountDeposited *float64 `json:"amountDeposited"`
	DueDate         *string  `json:"dueDate"`
}

type InvestmentPatch struct {
	Title           *string  `json:"title"`
	AmountNeeded    *float64 `json:"amountNeeded"`
	AmountDeposited *float64 `json:"amountDeposited"`
}

type SpendingPatch struct {
	Title           *string  `json:"title"`
	AmountDeposited *float64 `json:"amountDeposited"`
}
