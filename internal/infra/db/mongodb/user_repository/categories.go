package user_repository

import (
	"context"
	"time"

	"github.com/moneymap/moneymap-backend/internal/domain/errs"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SetInvestmentCategories replaces the whole configured list. Unlike entry
// mutations this is whole-list by contract: the UI always submits the full
// set.
func (u *UserMongoRepository) SetInvestmentCategories(userId primitive.ObjectID, categories []models.InvestmentCategory) error {
	update := bson.M{
		"$set": bson.M{
			"investment_categories": categories,
			"updated_at":            time.Now(),
		},
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
