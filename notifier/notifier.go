// Package notifier appends in-app notifications to the notifications
// collection. Every call is fire-and-forget: a failed dispatch is logged and
// never aborts or rolls back the operation that triggered it.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Mahesh61437/AquaticExoticaBackend/configs"
	"github.com/Mahesh61437/AquaticExoticaBackend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func collection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "notifications")
}

// Notify writes one notification. A nil userID targets the global admin feed.
func Notify(ctx context.Context, ntype, title, message string, data map[string]interface{}, userID *primitive.ObjectID) {
	doc := models.AppNotification{
		Id:        primitive.NewObjectID(),
		Type:      ntype,
		UserID:    userID,
		Title:     title,
		Message:   message,
		Data:      data,
		CreatedAt: time.Now(),
	}

	if _, err := collection().InsertOne(ctx, doc); err != nil {
		slog.Error("notification dispatch failed",
			"type", ntype, "title", title, "error", err)
	}
}

func UserSignedUp(ctx context.Context, user models.User) {
	Notify(ctx, models.NotificationUserSignup,
		"New User Registration",
		fmt.Sprintf("%s (%s) has signed up.", user.Name, user.Email),
		map[string]interface{}{"userId": user.Id.Hex(), "userEmail": user.Email},
		nil)
}

// OrderCreated notifies both the customer and the admin feed.
func OrderCreated(ctx context.Context, order models.Order, user models.User) {
	data := map[string]interface{}{"orderId": order.ID.Hex()}

	userID := order.UserID
	Notify(ctx, models.NotificationOrderCreated,
		"Your order has been placed",
		fmt.Sprintf("Order #%s was successfully created.", order.ID.Hex()),
		data, &userID)

	Notify(ctx, models.NotificationOrderCreated,
		"New order created",
		fmt.Sprintf("User %s placed Order #%s", user.Name, order.ID.Hex()),
		map[string]interface{}{"orderId": order.ID.Hex(), "userId": user.Id.Hex()},
		nil)
}

// OrderStatusChanged notifies the customer and the admin feed about a
// status transition.
func OrderStatusChanged(ctx context.Context, order models.Order, oldStatus, newStatus string) {
	data := map[string]interface{}{
		"orderId":   order.ID.Hex(),
		"oldStatus": oldStatus,
		"newStatus": newStatus,
	}

	userID := order.UserID
	Notify(ctx, models.NotificationOrderStatusChange,
		"Order Status Updated",
		fmt.Sprintf("Your order #%s status changed to %s.", order.ID.Hex(), newStatus),
		data, &userID)

	Notify(ctx, models.NotificationOrderStatusChange,
		"Order Status Changed",
		fmt.Sprintf("Order #%s changed to %s.", order.ID.Hex(), newStatus),
		data, nil)
}

func LowStock(ctx context.Context, product models.Product) {
	Notify(ctx, models.NotificationLowStock,
		"Low Stock Alert",
		fmt.Sprintf("Product '%s' is running low on stock (%d left).", product.Name, product.Stock),
		map[string]interface{}{"productId": product.ID.Hex(), "stock": product.Stock},
		nil)
}

func BackInStock(ctx context.Context, product models.Product, subscriberID primitive.ObjectID) {
	Notify(ctx, models.NotificationStockAvailable,
		"Back in Stock",
		fmt.Sprintf("The product '%s' is now available.", product.Name),
		map[string]interface{}{"productId": product.ID.Hex(), "stock": product.Stock},
		&subscriberID)
}
