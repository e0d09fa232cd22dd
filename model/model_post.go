package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Voter records one user's standing vote on a post. A post carries at most
// one Voter per email; upVote/downVote mirror the "up"/"down" entry counts.
type Voter struct {
	Email string `json:"email" bson:"email"`
	Vote  string `json:"vote"  bson:"vote"`
}

type Post struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	AuthorEmail string        `json:"authorEmail" bson:"authorEmail"`
	AuthorName  string        `json:"authorName"  bson:"authorName,omitempty"`
	AuthorImage string        `json:"authorImage" bson:"authorImage,omitempty"`
	Title       string        `json:"title"       bson:"title"`
	Description string        `json:"description" bson:"description"`
	Tag         string        `json:"tag"         bson:"tag"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"created_at"`
	UpVote      int           `json:"upVote"      bson:"upVote"`
	DownVote    int           `json:"downVote"    bson:"downVote"`
	TotalVote   int           `json:"totalVote"   bson:"totalVote"`
	Voters      []Voter       `json:"voters"      bson:"voters"`
}
