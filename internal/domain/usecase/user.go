package usecase

import (
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Credential store contract. Lookups return (nil, nil) when no account
// matches, infrastructure failures are returned as errors.

type CreateUserRepository interface {
	Create(user *models.User) (*models.User, error)
}

type FindUserByEmailRepository interface {
	FindByEmail(email string) (*models.User, error)
}

type FindUserByIdRepository interface {
	FindById(id primitive.ObjectID) (*models.User, error)
}

type UpdateUserPasswordRepository interface {
	UpdatePasswordHash(id primitive.ObjectID, hash string) error
}

type UpdateUserProfileRepository interface {
	UpdateProfile(id primitive.ObjectID, profile *models.UserProfile) (*models.User, error)
}
