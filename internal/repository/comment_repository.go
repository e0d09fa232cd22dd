package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ziffy_backend/model"
)

func FetchCommentsByPost(ctx context.Context, db *mongo.Database, postID string) ([]model.Comment, error) {
	cursor, err := db.Collection(CommentsCollection).Find(ctx, bson.M{"postId": postID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []model.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func InsertComment(ctx context.Context, db *mongo.Database, comment model.Comment) error {
	_, err := db.Collection(CommentsCollection).InsertOne(ctx, comment)
	return err
}

func DeleteComment(ctx context.Context, db *mongo.Database, idHex string) (int64, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, err
	}
	res, err := db.Collection(CommentsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func CountComments(ctx context.Context, db *mongo.Database) (int64, error) {
	return db.Collection(CommentsCollection).CountDocuments(ctx, bson.D{})
}
