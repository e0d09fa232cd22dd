package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Announcement struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	AuthorName  string        `json:"authorName"  bson:"authorName"`
	AuthorImage string        `json:"authorImage" bson:"authorImage,omitempty"`
	Title       string        `json:"title"       bson:"title"`
	Description string        `json:"description" bson:"description"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"created_at"`
}

type Tag struct {
	ID   bson.ObjectID `json:"id"   bson:"_id,omitempty"`
	Name string        `json:"name" bson:"name"`
}
