// Package inmemory is the ephemeral persistence adapter: the client-held
// copy of the account and the test double for the MongoDB adapter. It
// implements the same contracts, so the ledger and account services run
// unchanged on top of it.
package inmemory

import (
	"sync"
	"time"

	"github.com/moneymap/moneymap-backend/internal/domain/errs"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func notFound() error {
	return errs.NewNotFound("account not found")
}

type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]*models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[primitive.ObjectID]*models.User),
	}
}

func (r *InMemoryUserRepository) Create(user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneUser(user)
	stored.Id = primitive.NewObjectID()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = time.Now()
	r.users[stored.Id] = stored

	return cloneUser(stored), nil
}

func (r *InMemoryUserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (r *InMemoryUserRepository) FindById(id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (r *InMemoryUserRepository) UpdatePasswordHash(id primitive.ObjectID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return notFound()
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryUserRepository) UpdateProfile(id primitive.ObjectID, profile *models.UserProfile) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	user.Profile = *profile
	user.UpdatedAt = time.Now()
	return cloneUser(user), nil
}

func (r *InMemoryUserRepository) AddBill(userId primitive.ObjectID, bill *models.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userId]
	if !ok {
		return notFound()
	}
	user.Bills = append(user.Bills, *bill)
	user.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryUserRepository) UpdateBill(userId primitive.ObjectID, billId string, patch *models.BillPatch) (*models.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userId]
	if !ok {
		return nil, nil
	}
	for i := range user.Bills {
		if user.Bills[i].Id != billId {
			continue
		}
		if patch.Title != nil {
			user.Bills[i].Title = *patch.Title
		}
		if patch.AmountNeeded != nil {
			user.Bills[i].AmountNeeded = *patch.AmountNeeded
		}
		if patch.AmountDeposited != nil {
			user.Bills[i].AmountDeposited = *patch.AmountDeposited
		}
		if patch.DueDate != nil {
			user.Bills[i].DueDate = *patch.DueDate
		}
		user.UpdatedAt = time.Now()
		updated := user.Bills[i]
		return &updated, nil
	}
	return nil, nil
}

func (r *InMemoryUserRepository) DeleteBill(userId primitive.ObjectID, billId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userId]
	if !ok {
		return nil
	}
	for i := range user.Bills {
		if user.Bills[i].Id == billId {
			user.Bills = append(user.Bills[:i], user.Bills[i+1:]...)
			user.UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

func (r *InMemoryUserRepository) AddInvestment(userId primitive.ObjectID, investment *models.Investment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userId]
	if !ok {
		return notFound()
	}
	user.Investments = append(user.Investments, *investment)
	user.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryUserRepository) UpdateInvestment(userId primitive.ObjectID, investmentId string, patch *models.InvestmentPatch) (*models.Investment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userId]
	if !ok {
		return nil, nil
	}
	for i := range user.Investments {
		if user.Investments[i].Id != investmentId {
			continue
		}
		if patch.Title != nil {
			user.Investments[i].Title = *patch.Title
		}
		if patch.AmountNeeded != nil {
			user.Investments[i].AmountNeeded = *patch.AmountNeeded
		}
		if patch.AmountDeposited != nil {
			user.Investments[i].AmountDeposited = *patch.AmountDeposited
		}
		user.UpdatedAt = time.Now()
		updated := user.Investments[i]
		return &updated, nil
	}
	return nil, nil
}

func (r *InMemoryUserRepository) DeleteInvestment(userId primitive.ObjectID, investmentId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userId]
	if !ok {
		return nil
	}
	for i := range user.Investments {
		if user.Investments[i].Id == investmentId {
			user.Investments = append(user.Investments[:i], user.Investments[i+1:]...)
			user.UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

func (r *InMemoryUserRepository) AddSpending(userId primitive.ObjectID, spending *models.Spending) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userId]
	if !ok {
		return notFound()
	}
	user.Spendings = append(user.Spendings, *spending)
	user.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryUserRepository) UpdateSpending(userId primitive.ObjectID, spendingId string, patch *models.SpendingPatch) (*models.Spending, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userId]
	if !ok {
		return nil, nil
	}
	for i := range user.Spendings {
		if user.Spendings[i].Id != spendingId {
			continue
		}
		if patch.Title != nil {
			user.Spendings[i].Title = *patch.Title
		}
		if patch.AmountDeposited != nil {
			user.Spendings[i].AmountDeposited = *patch.AmountDeposited
		}
		user.UpdatedAt = time.Now()
		updated := user.Spendings[i]
		return &updated, nil
	}
	return nil, nil
}

func (r *InMemoryUserRepository) DeleteSpending(userId primitive.ObjectID, spendingId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userId]
	if !ok {
		return nil
	}
	for i := range user.Spendings {
		if user.Spendings[i].Id == spendingId {
			user.Spendings = append(user.Spendings[:i], user.Spendings[i+1:]...)
			user.UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

func (r *InMemoryUserRepository) SetInvestmentCategories(userId primitive.ObjectID, categories []models.InvestmentCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userId]
	if !ok {
		return notFound()
	}
	user.InvestmentCategories = append([]models.InvestmentCategory(nil), categories...)
	user.UpdatedAt = time.Now()
	return nil
}

// cloneUser deep-copies the aggregate so callers hold a snapshot, never a
// reference into the store.
func cloneUser(user *models.User) *models.User {
	clone := *user
	clone.Bills = append([]models.Bill(nil), user.Bills...)
	clone.Investments = append([]models.Investment(nil), user.Investments...)
	clone.Spendings = append([]models.Spending(nil), user.Spendings...)
	clone.InvestmentCategories = append([]models.InvestmentCategory(nil), user.InvestmentCategories...)
	return &clone
}
