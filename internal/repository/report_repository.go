package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ziffy_backend/model"
)

func InsertReport(ctx context.Context, db *mongo.Database, report model.Report) error {
	_, err := db.Collection(ReportsCollection).InsertOne(ctx, report)
	return err
}

func FetchReports(ctx context.Context, db *mongo.Database) ([]model.Report, error) {
	cursor, err := db.Collection(ReportsCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reports := []model.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// DeleteReport dismisses a report; also used after actioning one.
func DeleteReport(ctx context.Context, db *mongo.Database, idHex string) (int64, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, err
	}
	res, err := db.Collection(ReportsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
