package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order states.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem preserves the product name and unit price as they were at
// checkout. Later product edits never touch historical orders.
type OrderItem struct {
	ProductID  primitive.ObjectID `bson:"productId" json:"productId"`
	Name       string             `bson:"name" json:"name"`
	Quantity   int                `bson:"quantity" json:"quantity"`
	Price      string             `bson:"price" json:"price"`
	TotalPrice string             `bson:"totalPrice" json:"totalPrice"`
}

// Order is a committed purchase with a fixed price snapshot. Items are
// embedded so the whole aggregate is written in a single insert.
type Order struct {
	ID                primitive.ObjectID `bson:"_id" json:"id"`
	UserID            primitive.ObjectID `bson:"userId" json:"userId"`
	ShippingAddressID primitive.ObjectID `bson:"shippingAddressId" json:"shippingAddressId"`
	Items             []OrderItem        `bson:"items" json:"items"`
	TotalAmount       string             `bson:"totalAmount" json:"totalAmount"`
	ShippingCost      string             `bson:"shippingCost" json:"shippingCost"`
	Status            string             `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// GrandTotal is always derived from the two stored summands.
func (o Order) GrandTotal() string {
	total, err := decimal.NewFromString(o.TotalAmount)
	if err != nil {
		return ""
	}
	shipping, err := decimal.NewFromString(o.ShippingCost)
	if err != nil {
		return ""
	}
	return FormatMoney(total.Add(shipping))
}
