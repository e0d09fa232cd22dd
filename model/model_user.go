package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID        bson.ObjectID `json:"id"         bson:"_id,omitempty"`
	Name      string        `json:"name"       bson:"name"`
	Email     string        `json:"email"      bson:"email"`
	Image     string        `json:"image"      bson:"image,omitempty"`
	Role      string        `json:"role"       bson:"role"`
	Badge     string        `json:"badge"      bson:"badge,omitempty"`
	Plan      string        `json:"plan"       bson:"plan,omitempty"`
	Verified  bool          `json:"verified"   bson:"verified"`
	CreatedAt time.Time     `json:"createdAt"  bson:"created_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
