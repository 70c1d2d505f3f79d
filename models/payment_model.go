package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentStatusInitiated = "initiated"
	PaymentStatusPending   = "pending"
	PaymentStatusSuccess   = "success"
	PaymentStatusFailure   = "failure"
)

// Payment tracks one order's lifecycle at the gateway. txnid and orderId are
// both unique, so a transaction id is never reused and an order can only be
// initiated once.
type Payment struct {
	Id              primitive.ObjectID `bson:"_id" json:"id"`
	TxnID           string             `bson:"txnid" json:"txnid"`
	OrderID         primitive.ObjectID `bson:"orderId" json:"orderId"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Amount          string             `bson:"amount" json:"amount"`
	Status          string             `bson:"status" json:"status"`
	Verified        bool               `bson:"verified" json:"verified"`
	GatewayResponse map[string]string  `bson:"gatewayResponse,omitempty" json:"gatewayResponse,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
