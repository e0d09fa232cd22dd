package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Report struct {
	ID            bson.ObjectID `json:"id"            bson:"_id,omitempty"`
	CommentID     string        `json:"commentId"     bson:"commentId,omitempty"`
	PostID        string        `json:"postId"        bson:"postId,omitempty"`
	CommentText   string        `json:"commentText"   bson:"commentText,omitempty"`
	Reason        string        `json:"reason"        bson:"reason"`
	ReporterEmail string        `json:"reporterEmail" bson:"reporterEmail"`
	CreatedAt     time.Time     `json:"createdAt"     bson:"created_at"`
}
