package user_repository

import (
	"context"
	"time"

	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (u *UserMongoRepository) Create(user *models.User) (*models.User, error) {
	userToSave := *user
	userToSave.Id = primitive.NewObjectID()
	userToSave.CreatedAt = time.Now()
	userToSave.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := u.collection().InsertOne(ctx, userToSave)
	if err != nil {
		return nil, err
	}

	return &userToSave, nil
}
