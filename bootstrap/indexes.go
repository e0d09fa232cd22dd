package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes the query layer leans on. Safe to run
// on every boot; CreateOne is a no-op for an index that already exists.
func EnsureIndexes(db *mongo.Database) error {
	_, err := db.Collection("userCollection").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	)
	if err != nil {
		return err
	}

	// popularity listing sorts on totalVote desc, created_at desc
	_, err = db.Collection("postCollection").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "totalVote", Value: -1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("popularity"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("commentCollection").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "postId", Value: 1}},
			Options: options.Index().SetName("comments_by_post"),
		},
	)
	return err
}
