package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StockNotification is a back-in-stock subscription, unique per
// (user, product). isNotified flips once the restock alert fires so a
// subscription delivers at most once per restock.
type StockNotification struct {
	Id         primitive.ObjectID `bson:"_id" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	Email      string             `bson:"email" json:"email"`
	ProductID  primitive.ObjectID `bson:"productId" json:"productId"`
	IsNotified bool               `bson:"isNotified" json:"isNotified"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
