package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// PostID is the parent post's hex id stored by value, not a DBRef.
type Comment struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	PostID      string        `json:"postId"      bson:"postId"`
	AuthorEmail string        `json:"authorEmail" bson:"authorEmail"`
	AuthorName  string        `json:"authorName"  bson:"authorName,omitempty"`
	Text        string        `json:"text"        bson:"text"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"created_at"`
}
