package controllers

import (
	"context"
	"log/slog"
	"time"

	"github.com/Mahesh61437/AquaticExoticaBackend/configs"
	"github.com/Mahesh61437/AquaticExoticaBackend/models"
	"github.com/Mahesh61437/AquaticExoticaBackend/notifier"
	"github.com/Mahesh61437/AquaticExoticaBackend/responses"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func stockNotificationCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "stocknotifications")
}

// SubscribeStockNotification registers the caller for a one-time alert when
// the product comes back in stock. One subscription per (user, product).
func SubscribeStockNotification(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, _ := c.Locals("userId").(string)
	userObjID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user ID format",
		})
	}

	var reqBody struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	productObjID, err := primitive.ObjectIDFromHex(reqBody.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}

	var product models.Product
	err = productCollection().FindOne(ctx, bson.M{"_id": productObjID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product",
		})
	}

	var user models.User
	if err := configs.GetCollection(configs.DB(), "users").
		FindOne(ctx, bson.M{"_id": userObjID}).Decode(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user details",
		})
	}

	sub := models.StockNotification{
		Id:        primitive.NewObjectID(),
		UserID:    userObjID,
		Email:     user.Email,
		ProductID: productObjID,
		CreatedAt: time.Now(),
	}

	if _, err := stockNotificationCollection().InsertOne(ctx, sub); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusConflict).JSON(responses.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: "Already subscribed to stock notifications for this product",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error saving subscription",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully subscribed to stock notifications",
		Result:  &fiber.Map{"subscription": sub},
	})
}

func GetStockSubscriptions(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, _ := c.Locals("userId").(string)
	userObjID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user ID format",
		})
	}

	subs := make([]models.StockNotification, 0)
	cursor, err := stockNotificationCollection().Find(ctx, bson.M{"userId": userObjID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching subscriptions",
		})
	}
	if err := cursor.All(ctx, &subs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing subscriptions",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Subscriptions fetched successfully",
		Result:  &fiber.Map{"subscriptions": subs},
	})
}

// shouldNotifyRestock reports whether a stock save is a restock event:
// the persisted value changed and the new value is purchasable.
func shouldNotifyRestock(oldStock, newStock int) bool {
	return newStock > 0 && newStock != oldStock
}

// restockRecipients picks the subscriptions still owed an alert and the
// ids to flip once it goes out. Already notified subscriptions never
// receive a second dispatch.
func restockRecipients(subs []models.StockNotification) ([]models.StockNotification, []primitive.ObjectID) {
	recipients := make([]models.StockNotification, 0, len(subs))
	ids := make([]primitive.ObjectID, 0, len(subs))
	for _, sub := range subs {
		if sub.IsNotified {
			continue
		}
		recipients = append(recipients, sub)
		ids = append(ids, sub.Id)
	}
	return recipients, ids
}

// dispatchRestockNotifications alerts every unnotified subscriber for the
// product and marks each subscription notified, giving at-most-once
// delivery per subscription per restock.
func dispatchRestockNotifications(ctx context.Context, product models.Product) {
	cursor, err := stockNotificationCollection().Find(ctx, bson.M{
		"productId":  product.ID,
		"isNotified": false,
	})
	if err != nil {
		slog.Error("restock subscription lookup failed", "productId", product.ID.Hex(), "error", err)
		return
	}

	var subs []models.StockNotification
	if err := cursor.All(ctx, &subs); err != nil {
		slog.Error("restock subscription decode failed", "productId", product.ID.Hex(), "error", err)
		return
	}

	recipients, markIds := restockRecipients(subs)
	for _, sub := range recipients {
		notifier.BackInStock(ctx, product, sub.UserID)
	}
	if len(markIds) == 0 {
		return
	}

	_, err = stockNotificationCollection().UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": markIds}},
		bson.M{"$set": bson.M{"isNotified": true}})
	if err != nil {
		slog.Error("failed to mark subscriptions notified", "productId", product.ID.Hex(), "error", err)
	}
}
