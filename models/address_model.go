package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShippingAddress belongs to a user. At most one address per user carries
// isDefault=true; orders reference addresses by id and block their deletion.
type ShippingAddress struct {
	Id             primitive.ObjectID `bson:"_id" json:"id"`
	UserId         primitive.ObjectID `bson:"userId" json:"userId"`
	AddressLine1   string             `bson:"addressLine1" json:"addressLine1" validate:"required"`
	AddressLine2   string             `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	City           string             `bson:"city" json:"city" validate:"required"`
	State          string             `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode        string             `bson:"zipCode,omitempty" json:"zipCode,omitempty"`
	Country        string             `bson:"country" json:"country" validate:"required"`
	RecipientName  string             `bson:"recipientName,omitempty" json:"recipientName,omitempty"`
	RecipientPhone string             `bson:"recipientPhone,omitempty" json:"recipientPhone,omitempty"`
	IsDefault      bool               `bson:"isDefault" json:"isDefault"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
