package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Payment struct {
	ID            bson.ObjectID `json:"id"            bson:"_id,omitempty"`
	Email         string        `json:"email"         bson:"email"`
	Amount        int64         `json:"amount"        bson:"amount"`
	TransactionID string        `json:"transactionId" bson:"transactionId"`
	Plan          string        `json:"plan"          bson:"plan"`
	CreatedAt     time.Time     `json:"createdAt"     bson:"created_at"`
}
