package usecase

import (
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ledger persistence contract. Each mutation targets one entry of one
// account and must be applied as a single atomic read-modify-write against
// the durable record, so concurrent updates to different entries never
// overwrite each other.
//
// Update operations return (nil, nil) when no entry matches the id.
// Delete operations are no-ops on a missing id.

type AddBillRepository interface {
	AddBill(userId primitive.ObjectID, bill *models.Bill) error
}

type UpdateBillRepository interface {
	UpdateBill(userId primitive.ObjectID, billId string, patch *models.BillPatch) (*models.Bill, error)
}

type DeleteBillRepository interface {
	DeleteBill(userId primitive.ObjectID, billId string) error
}

type AddInvestmentRepository interface {
	AddInvestment(userId primitive.ObjectID, investment *models.Investment) error
}

type UpdateInvestmentRepository interface {
	UpdateInvestment(userId primitive.ObjectID, investmentId string, patch *models.InvestmentPatch) (*models.Investment, error)
}

type DeleteInvestmentRepository interface {
	DeleteInvestment(userId primitive.ObjectID, investmentId string) error
}

type AddSpendingRepository interface {
	AddSpending(userId primitive.ObjectID, spending *models.Spending) error
}

type UpdateSpendingRepository interface {
	UpdateSpending(userId primitive.ObjectID, spendingId string, patch *models.SpendingPatch) (*models.Spending, error)
}

type DeleteSpendingRepository interface {
	DeleteSpending(userId primitive.ObjectID, spendingId string) error
}

type SetInvestmentCategoriesRepository interface {
	SetInvestmentCategories(userId primitive.ObjectID, categories []models.InvestmentCategory) error
}

// LedgerRepository is the full persistence contract one environment
// implements: the MongoDB adapter server-side, the in-memory adapter for
// the client-held copy and for tests.
type LedgerRepository interface {
	FindUserByIdRepository
	UpdateUserProfileRepository
	AddBillRepository
	UpdateBillRepository
	DeleteBillRepository
	AddInvestmentRepository
	UpdateInvestmentRepository
	DeleteInvestmentRepository
	AddSpendingRepository
	UpdateSpendingRepository
	DeleteSpendingRepository
	SetInvestmentCategoriesRepository
}
