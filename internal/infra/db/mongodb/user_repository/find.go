package user_repository

import (
	"context"

	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (u *UserMongoRepository) FindByEmail(email string) (*models.User, error) {
	return u.findOne(bson.M{"email": email})
}

func (u *UserMongoRepository) FindById(id primitive.ObjectID) (*models.User, error) {
	return u.findOne(bson.M{"_id": id})
}

func (u *UserMongoRepository) findOne(filter bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := u.collection().FindOne(ctx, filter)
	if result.Err() == mongo.ErrNoDocuments {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user models.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}
