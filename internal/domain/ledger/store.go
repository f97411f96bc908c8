// Package ledger implements the store semantics shared by every
// environment: field invariants, id assignment, partial updates and
// idempotent deletes. The persistence technology stays behind
// usecase.LedgerRepository, so the business rules exist exactly once.
package ledger

import (
	"time"

	"github.com/moneymap/moneymap-backend/internal/domain/currency"
	"github.com/moneymap/moneymap-backend/internal/domain/errs"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const dateLayout = "2006-01-02"

type Store struct {
	Repository usecase.LedgerRepository

	// Now is the clock used for the past-due-date check; tests pin it.
	Now func() time.Time
}

func NewStore(repository usecase.LedgerRepository) *Store {
	return &Store{
		Repository: repository,
		Now:        time.Now,
	}
}

// Snapshot loads the full account aggregate for the pure computations.
func (s *Store) Snapshot(userId primitive.ObjectID) (*models.User, error) {
	user, err := s.Repository.FindById(userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFound("account not found")
	}
	return user, nil
}

func (s *Store) AddBill(userId primitive.ObjectID, input *models.BillInput) (*models.Bill, error) {
	if input.AmountNeeded < 0 || input.AmountDeposited < 0 {
		return nil, errs.NewValidation("amounts must not be negative")
	}
	if input.Title == "" {
		return nil, errs.NewValidation("title is required")
	}
	dueDate, err := time.Parse(dateLayout, input.DueDate)
	if err != nil {
		return nil, errs.NewValidation("due date must be a valid date in YYYY-MM-DD format")
	}
	if dueDate.Before(s.today()) {
		return nil, errs.NewValidation("due date cannot be in the past")
	}

	bill := &models.Bill{
		Id:              primitive.NewObjectID().Hex(),
		Title:           input.Title,
		AmountNeeded:    input.AmountNeeded,
		AmountDeposited: input.AmountDeposited,
		DueDate:         input.DueDate,
	}
	if err := s.Repository.AddBill(userId, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// UpdateBill replaces only the supplied fields. A past due date is allowed
// here, unlike at creation; it still has to parse.
func (s *Store) UpdateBill(userId primitive.ObjectID, billId string, patch *models.BillPatch) (*models.Bill, error) {
	if patch.AmountNeeded != nil && *patch.AmountNeeded < 0 {
		return nil, errs.NewValidation("amount needed must not be negative")
	}
	if patch.AmountDeposited != nil && *patch.AmountDeposited < 0 {
		return nil, errs.NewValidation("amount deposited must not be negative")
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, errs.NewValidation("title must not be empty")
	}
	if patch.DueDate != nil {
		if _, err := time.Parse(dateLayout, *patch.DueDate); err != nil {
			return nil, errs.NewValidation("due date must be a valid date in YYYY-MM-DD format")
		}
	}

	bill, err := s.Repository.UpdateBill(userId, billId, patch)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, errs.NewNotFound("bill not found")
	}
	return bill, nil
}

func (s *Store) DeleteBill(userId primitive.ObjectID, billId string) error {
	return s.Repository.DeleteBill(userId, billId)
}

func (s *Store) AddInvestment(userId primitive.ObjectID, input *models.InvestmentInput) (*models.Investment, error) {
	if input.AmountNeeded < 0 || input.AmountDeposited < 0 {
		return nil, errs.NewValidation("amounts must not be negative")
	}
	if input.Title == "" {
		return nil, errs.NewValidation("title is required")
	}

	investment := &models.Investment{
		Id:              primitive.NewObjectID().Hex(),
		Title:           input.Title,
		AmountNeeded:    input.AmountNeeded,
		AmountDeposited: input.AmountDeposited,
	}
	if err := s.Repository.AddInvestment(userId, investment); err != nil {
		return nil, err
	}
	return investment, nil
}

func (s *Store) UpdateInvestment(userId primitive.ObjectID, investmentId string, patch *models.InvestmentPatch) (*models.Investment, error) {
	if patch.AmountNeeded != nil && *patch.AmountNeeded < 0 {
		return nil, errs.NewValidation("amount needed must not be negative")
	}
	if patch.AmountDeposited != nil && *patch.AmountDeposited < 0 {
		return nil, errs.NewValidation("amount deposited must not be negative")
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, errs.NewValidation("title must not be empty")
	}

	investment, err := s.Repository.UpdateInvestment(userId, investmentId, patch)
	if err != nil {
		return nil, err
	}
	if investment == nil {
		return nil, errs.NewNotFound("investment not found")
	}
	return investment, nil
}

func (s *Store) DeleteInvestment(userId primitive.ObjectID, investmentId string) error {
	return s.Repository.DeleteInvestment(userId, investmentId)
}

func (s *Store) AddSpending(userId primitive.ObjectID, input *models.SpendingInput) (*models.Spending, error) {
	if input.AmountDeposited < 0 {
		return nil, errs.NewValidation("amount deposited must not be negative")
	}
	if input.Title == "" {
		return nil, errs.NewValidation("title is required")
	}

	spending := &models.Spending{
		Id:              primitive.NewObjectID().Hex(),
		Title:           input.Title,
		AmountDeposited: input.AmountDeposited,
	}
	if err := s.Repository.AddSpending(userId, spending); err != nil {
		return nil, err
	}
	return spending, nil
}

func (s *Store) UpdateSpending(userId primitive.ObjectID, spendingId string, patch *models.SpendingPatch) (*models.Spending, error) {
	if patch.AmountDeposited != nil && *patch.AmountDeposited < 0 {
		return nil, errs.NewValidation("amount deposited must not be negative")
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, errs.NewValidation("title must not be empty")
	}

	spending, err := s.Repository.UpdateSpending(userId, spendingId, patch)
	if err != nil {
		return nil, err
	}
	if spending == nil {
		return nil, errs.NewNotFound("spending not found")
	}
	return spending, nil
}

func (s *Store) DeleteSpending(userId primitive.ObjectID, spendingId string) error {
	return s.Repository.DeleteSpending(userId, spendingId)
}

func (s *Store) UpdateProfile(userId primitive.ObjectID, patch *models.UserProfilePatch) (*models.UserProfile, error) {
	if patch.MonthlySalary != nil && *patch.MonthlySalary < 0 {
		return nil, errs.NewValidation("monthly salary must not be negative")
	}
	if patch.Currency != nil && !currency.IsValid(*patch.Currency) {
		return nil, errs.NewValidation("unsupported currency code")
	}

	user, err := s.Repository.FindById(userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFound("account not found")
	}

	profile := user.Profile
	if patch.FirstName != nil {
		profile.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		profile.LastName = *patch.LastName
	}
	if patch.Currency != nil {
		profile.Currency = *patch.Currency
	}
	if patch.MonthlySalary != nil {
		profile.MonthlySalary = *patch.MonthlySalary
	}
	if patch.IsSetup != nil {
		profile.IsSetup = *patch.IsSetup
	}

	updated, err := s.Repository.UpdateProfile(userId, &profile)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errs.NewNotFound("account not found")
	}
	return &updated.Profile, nil
}

func (s *Store) SetInvestmentCategories(userId primitive.ObjectID, categories []models.InvestmentCategory) error {
	for _, category := range categories {
		if category.Name == "" {
			return errs.NewValidation("category name is required")
		}
		if category.Percentage < 0 || category.Percentage > 100 {
			return errs.NewValidation("category percentage must be between 0 and 100")
		}
	}

	withIds := make([]models.InvestmentCategory, len(categories))
	for i, category := range categories {
		if category.Id == "" {
			category.Id = primitive.NewObjectID().Hex()
		}
		withIds[i] = category
	}
	return s.Repository.SetInvestmentCategories(userId, withIds)
}

// today truncates the clock to day granularity in UTC, the same zone
// time.Parse assigns to due dates.
func (s *Store) today() time.Time {
	now := s.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
