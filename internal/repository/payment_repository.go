package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"ziffy_backend/model"
)

func InsertPayment(ctx context.Context, db *mongo.Database, payment model.Payment) error {
	_, err := db.Collection(PaymentsCollection).InsertOne(ctx, payment)
	return err
}
