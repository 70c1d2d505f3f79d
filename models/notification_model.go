package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotificationUserSignup        = "user_signup"
	NotificationOrderCreated      = "order_created"
	NotificationOrderStatusChange = "order_status_change"
	NotificationLowStock          = "low_stock"
	NotificationStockAvailable    = "stock_notification"
	NotificationContactMessage    = "contact_message"
)

// AppNotification is an in-app feed entry. A nil UserID means the entry
// belongs to the global admin feed.
type AppNotification struct {
	Id        primitive.ObjectID     `bson:"_id" json:"id"`
	Type      string                 `bson:"type" json:"type"`
	UserID    *primitive.ObjectID    `bson:"userId,omitempty" json:"userId,omitempty"`
	Title     string                 `bson:"title" json:"title"`
	Message   string                 `bson:"message" json:"message"`
	Data      map[string]interface{} `bson:"data,omitempty" json:"data,omitempty"`
	IsRead    bool                   `bson:"isRead" json:"isRead"`
	CreatedAt time.Time              `bson:"createdAt" json:"createdAt"`
}
