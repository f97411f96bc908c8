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

func (u *UserMongoRepository) AddInvestment(userId primitive.ObjectID, investment *models.Investment) error {
	update := bson.M{
		"$push": bson.M{"investments": investment},
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

func (u *UserMongoRepository) UpdateInvestment(userId primitive.ObjectID, investmentId string, patch *models.InvestmentPatch) (*models.Investment, error) {
	set := bson.M{"updated_at": time.Now()}
	if patch.Title != nil {
		set["investments.$.title"] = *patch.Title
	}
	if patch.AmountNeeded != nil {
		set["investments.$.amount_needed"] = *patch.AmountNeeded
	}
	if patch.AmountDeposited != nil {
		set["investments.$.amount_deposited"] = *patch.AmountDeposited
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := u.collection().FindOneAndUpdate(
		ctx,
		bson.M{"_id": userId, "investments.id": investmentId},
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

	for i := range user.Investments {
		if user.Investments[i].Id == investmentId {
			return &user.Investments[i], nil
		}
	}
	return nil, nil
}

func (u *UserMongoRepository) DeleteInvestment(userId primitive.ObjectID, investmentId string) error {
	update := bson.M{
		"$pull": bson.M{"investments": bson.M{"id": investmentId}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := u.collection().UpdateOne(ctx, bson.M{"_id": userId}, update)
	return err
}
