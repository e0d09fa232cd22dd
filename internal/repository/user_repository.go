package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ziffy_backend/model"
)

func FindUserByEmail(ctx context.Context, db *mongo.Database, email string) (*model.User, error) {
	var user model.User
	err := db.Collection(UsersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func InsertUser(ctx context.Context, db *mongo.Database, user model.User) error {
	_, err := db.Collection(UsersCollection).InsertOne(ctx, user)
	return err
}

func FetchAllUsers(ctx context.Context, db *mongo.Database) ([]model.User, error) {
	cursor, err := db.Collection(UsersCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SearchUsersByName does a case-insensitive partial match; an empty name
// matches everyone.
func SearchUsersByName(ctx context.Context, db *mongo.Database, name string) ([]model.User, error) {
	query := bson.M{"name": bson.M{"$regex": substringPattern(name), "$options": "i"}}
	cursor, err := db.Collection(UsersCollection).Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func PromoteToAdmin(ctx context.Context, db *mongo.Database, idHex string) (int64, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, err
	}
	res, err := db.Collection(UsersCollection).UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": model.RoleAdmin}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// SetBadge marks the paid badge and records the chosen plan.
func SetBadge(ctx context.Context, db *mongo.Database, email, plan string) (int64, error) {
	res, err := db.Collection(UsersCollection).UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"badge": "gold", "plan": plan}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// UserRole backs the admin middleware's role stage.
func UserRole(ctx context.Context, db *mongo.Database, email string) (string, error) {
	user, err := FindUserByEmail(ctx, db, email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func CountUsers(ctx context.Context, db *mongo.Database) (int64, error) {
	return db.Collection(UsersCollection).CountDocuments(ctx, bson.D{})
}
