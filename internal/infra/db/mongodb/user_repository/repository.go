// Package user_repository persists the whole account aggregate as one
// document in the "users" collection. Per-entry mutations are single
// atomic commands ($push, positional $set, $pull), so concurrent updates
// to different entries of the same account never overwrite each other.
package user_repository

import (
	"context"
	"log"

	"github.com/moneymap/moneymap-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "users"

type UserMongoRepository struct {
	Db *mongo.Database
}

func NewUserMongoRepository(db *mongo.Database) *UserMongoRepository {
	return &UserMongoRepository{
		Db: db,
	}
}

func (u *UserMongoRepository) collection() *mongo.Collection {
	return u.Db.Collection(collectionName)
}

// EnsureIndexes creates the unique email index. The directory also checks
// for duplicates before insert; the index closes the race between the two
// steps.
func (u *UserMongoRepository) EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := u.collection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("failed to create email index: %v", err)
	}
}
