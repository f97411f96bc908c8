package user_repository

import (
	"context"
	"time"

	"github.com/moneymap/moneymap-backend/internal/domain/errs"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (u *UserMongoRepository) AddSpending(userId primitive.ObjectID, spending *models.Spending) error {
	update := bson.M{
		"$push": bson.M{"spendings": spending},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := u.collection().UpdateOne(ctx, bson.M{"_id": userId}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.NewNotFound("account not found")
	}

	return nil
}

func (u *UserMongoRepository) UpdateSpending(userId primitive.ObjectID, spendingId string, patch *models.SpendingPatch) (*models.Spending, error) {
	set := bson.M{"updated_at": time.Now()}
	if patch.Title != nil {
		set["spendings.$.title"] = *patch.Title
	}
	if patch.AmountDeposited != nil {
		set["spendings.$.amount_deposited"] = *patch.AmountDeposited
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := u.collection().FindOneAndUpdate(
		ctx,
		bson.M{"_id": userId, "spendings.id": spendingId},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
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

	for i := range user.Spendings {
		if user.Spendings[i].Id == spendingId {
			return &user.Spendings[i], nil
		}
	}
	return nil, nil
}

func (u *UserMongoRepository) DeleteSpending(userId primitive.ObjectID, spendingId string) error {
	update := bson.M{
		"$pull": bson.M{"spendings": bson.M{"id": spendingId}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := u.collection().UpdateOne(ctx, bson.M{"_id": userId}, update)
	return err
}
