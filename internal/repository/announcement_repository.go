package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ziffy_backend/model"
)

func FetchAnnouncements(ctx context.Context, db *mongo.Database) ([]model.Announcement, error) {
	cursor, err := db.Collection(AnnouncementsCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	announcements := []model.Announcement{}
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func InsertAnnouncement(ctx context.Context, db *mongo.Database, a model.Announcement) error {
	_, err := db.Collection(AnnouncementsCollection).InsertOne(ctx, a)
	return err
}

func DeleteAnnouncement(ctx context.Context, db *mongo.Database, idHex string) (int64, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, err
	}
	res, err := db.Collection(AnnouncementsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
