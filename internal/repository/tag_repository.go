package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ziffy_backend/model"
)

func FetchTags(ctx context.Context, db *mongo.Database) ([]model.Tag, error) {
	cursor, err := db.Collection(TagsCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tags := []model.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func InsertTag(ctx context.Context, db *mongo.Database, tag model.Tag) error {
	_, err := db.Collection(TagsCollection).InsertOne(ctx, tag)
	return err
}
