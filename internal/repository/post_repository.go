package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"ziffy_backend/dto"
	"ziffy_backend/internal/pagination"
	"ziffy_backend/model"
)

var sortByRecency = bson.D{{Key: "created_at", Value: -1}}

// popularity ties break on recency
var sortByPopularity = bson.D{
	{Key: "totalVote", Value: -1},
	{Key: "created_at", Value: -1},
}

func findPostPage(ctx context.Context, coll *mongo.Collection, filter any, sort bson.D, p pagination.Params) ([]model.Post, error) {
	opts := options.Find().SetSkip(p.Skip()).SetLimit(p.Limit)
	if sort != nil {
		opts = opts.SetSort(sort)
	}
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// FetchPostsPage lists posts newest first. exactCount selects
// CountDocuments over EstimatedDocumentCount: /all-post wants the exact
// total, /pagination-post trades accuracy for speed.
func FetchPostsPage(ctx context.Context, db *mongo.Database, p pagination.Params, exactCount bool) (dto.PostPage, error) {
	coll := db.Collection(PostsCollection)

	posts, err := findPostPage(ctx, coll, bson.D{}, sortByRecency, p)
	if err != nil {
		return dto.PostPage{}, err
	}

	var total int64
	if exactCount {
		total, err = coll.CountDocuments(ctx, bson.D{})
	} else {
		total, err = coll.EstimatedDocumentCount(ctx)
	}
	if err != nil {
		return dto.PostPage{}, err
	}

	return dto.PostPage{Posts: posts, TotalPages: pagination.TotalPages(total, p.Limit)}, nil
}

func FetchPopularPostsPage(ctx context.Context, db *mongo.Database, p pagination.Params) (dto.PostPage, error) {
	coll := db.Collection(PostsCollection)

	posts, err := findPostPage(ctx, coll, bson.D{}, sortByPopularity, p)
	if err != nil {
		return dto.PostPage{}, err
	}
	total, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return dto.PostPage{}, err
	}
	return dto.PostPage{Posts: posts, TotalPages: pagination.TotalPages(total, p.Limit)}, nil
}

// SearchPostsByTag matches the tag as a case-insensitive substring.
func SearchPostsByTag(ctx context.Context, db *mongo.Database, tag string, p pagination.Params) (dto.PostPage, error) {
	coll := db.Collection(PostsCollection)
	query := bson.M{"tag": bson.M{"$regex": substringPattern(tag), "$options": "i"}}

	posts, err := findPostPage(ctx, coll, query, nil, p)
	if err != nil {
		return dto.PostPage{}, err
	}
	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return dto.PostPage{}, err
	}
	return dto.PostPage{Posts: posts, TotalPages: pagination.TotalPages(total, p.Limit)}, nil
}

func FindPostByID(ctx context.Context, db *mongo.Database, idHex string) (*model.Post, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, err
	}
	var post model.Post
	if err := db.Collection(PostsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

func FetchPostsByAuthor(ctx context.Context, db *mongo.Database, email string) ([]model.Post, error) {
	cursor, err := db.Collection(PostsCollection).Find(ctx, bson.M{"authorEmail": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// FetchRecentPostsByAuthor backs the profile view's "last n posts" strip.
func FetchRecentPostsByAuthor(ctx context.Context, db *mongo.Database, email string, n int64) ([]model.Post, error) {
	opts := options.Find().SetSort(sortByRecency).SetLimit(n)
	cursor, err := db.Collection(PostsCollection).Find(ctx, bson.M{"authorEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func CountPostsByAuthor(ctx context.Context, db *mongo.Database, email string) (int64, error) {
	return db.Collection(PostsCollection).CountDocuments(ctx, bson.M{"authorEmail": email})
}

func CountPosts(ctx context.Context, db *mongo.Database) (int64, error) {
	return db.Collection(PostsCollection).CountDocuments(ctx, bson.D{})
}

func InsertPost(ctx context.Context, db *mongo.Database, post model.Post) (any, error) {
	res, err := db.Collection(PostsCollection).InsertOne(ctx, post)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

func DeletePost(ctx context.Context, db *mongo.Database, idHex string) (int64, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, err
	}
	res, err := db.Collection(PostsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// FetchPopularAbove returns posts whose derived total reaches the
// threshold, unpaginated.
func FetchPopularAbove(ctx context.Context, db *mongo.Database, threshold int) ([]model.Post, error) {
	cursor, err := db.Collection(PostsCollection).Find(ctx, bson.M{"totalVote": bson.M{"$gte": threshold}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// DistinctPostTags groups the tags actually used on posts.
func DistinctPostTags(ctx context.Context, db *mongo.Database) ([]string, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$tag"}}},
		{{Key: "$project", Value: bson.M{"_id": 0, "tag": "$_id"}}},
	}
	cursor, err := db.Collection(PostsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Tag string `bson:"tag"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	tags := make([]string, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, row.Tag)
	}
	return tags, nil
}

type PostSummary struct {
	UpVote        int `json:"upVote"        bson:"upVote"`
	DownVote      int `json:"downVote"      bson:"downVote"`
	TotalVote     int `json:"totalVote"     bson:"totalVote"`
	CommentsCount int `json:"commentsCount" bson:"commentsCount"`
}

// FetchPostSummary joins the comment count in; comments store the post id
// as a string, hence the $toString on the joined side.
func FetchPostSummary(ctx context.Context, db *mongo.Database, idHex string) (*PostSummary, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$lookup", Value: bson.M{
			"from": CommentsCollection,
			"let":  bson.M{"postIdStr": bson.M{"$toString": "$_id"}},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{
					"$expr": bson.M{"$eq": bson.A{"$postId", "$$postIdStr"}},
				}},
			},
			"as": "comments",
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":           0,
			"upVote":        1,
			"downVote":      1,
			"totalVote":     1,
			"commentsCount": bson.M{"$size": "$comments"},
		}}},
	}

	cursor, err := db.Collection(PostsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []PostSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &summaries[0], nil
}
