package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ApplyVoteUpdate runs the vote engine's conditional write. The filter
// re-checks the decision's precondition (voter absent, or voter standing
// on the opposite direction), so a racing vote from the same voter
// matches zero documents instead of double-applying. Returns the matched
// count for the caller to detect that case.
func ApplyVoteUpdate(ctx context.Context, db *mongo.Database, filter, update bson.M) (int64, error) {
	res, err := db.Collection(PostsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// RecomputeTotalVote sets totalVote = upVote - downVote server-side via an
// update pipeline, so no client read sits between the counter write and
// the total write. Returns the fresh total. This is still a second write:
// a crash after ApplyVoteUpdate leaves totalVote stale, with no
// compensating action (accepted gap, reconciled manually).
func RecomputeTotalVote(ctx context.Context, db *mongo.Database, id bson.ObjectID) (int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"totalVote": bson.M{"$subtract": bson.A{"$upVote", "$downVote"}},
		}}},
	}

	var updated struct {
		TotalVote int `bson:"totalVote"`
	}
	err := db.Collection(PostsCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		pipeline,
		options.FindOneAndUpdate().SetReturnDocument(options.After).
			SetProjection(bson.M{"totalVote": 1}),
	).Decode(&updated)
	if err != nil {
		return 0, err
	}
	return updated.TotalVote, nil
}
