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

func (u *UserMongoRepository) AddBill(userId primitive.ObjectID, bill *models.Bill) error {
	update := bson.M{
		"$push": bson.M{"bills": bill},
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

// UpdateBill sets only the supplied fields on the matching array element,
// in one command, using the positional operator.
func (u *UserMongoRepository) UpdateBill(userId primitive.ObjectID, billId string, patch *models.BillPatch) (*models.Bill, error) {
	set := bson.M{"updated_at": time.Now()}
	if patch.Title != nil {
		set["bills.$.title"] = *patch.Title
	}
	if patch.AmountNeeded != nil {
		set["bills.$.amount_needed"] = *patch.AmountNeeded
	}
	if patch.AmountDeposited != nil {
		set["bills.$.amount_deposited"] = *patch.AmountDeposited
	}
	if patch.DueDate != nil {
		set["bills.$.due_date"] = *patch.DueDate
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := u.collection().FindOneAndUpdate(
		ctx,
		bson.M{"_id": userId, "bills.id": billId},
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

	for i := range user.Bills {
		if user.Bills[i].Id == billId {
			return &user.Bills[i], nil
		}
	}
	return nil, nil
}

func (u *UserMongoRepository) DeleteBill(userId primitive.ObjectID, billId string) error {
	update := bson.M{
		"$pull": bson.M{"bills": bson.M{"id": billId}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := u.collection().UpdateOne(ctx, bson.M{"_id": userId}, update)
	return err
}
