package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserTypeCustomer = "user"
	UserTypeAdmin    = "admin"
)

type User struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	ImageUrl  string             `bson:"profileImage" json:"profileImage,omitempty"`
	Password  string             `bson:"password" json:"password,omitempty" validate:"required,min=8"`
	Type      string             `bson:"type,omitempty" json:"type,omitempty" validate:"required,oneof=user admin"`
	Cart      []CartItem         `bson:"cart" json:"cart"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CartItem is a pre-checkout line on the user document. Prices stay live
// until checkout, where the order snapshots them.
type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId" validate:"required"`
	Quantity  int                `bson:"quantity" json:"quantity" validate:"required,min=1"`
}

// FirstName returns the leading name token, used for gateway payloads.
func (u User) FirstName() string {
	for i := 0; i < len(u.Name); i++ {
		if u.Name[i] == ' ' {
			return u.Name[:i]
		}
	}
	if u.Name == "" {
		return "User"
	}
	return u.Name
}
