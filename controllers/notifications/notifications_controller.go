package controllers

import (
	"context"
	"strconv"
	"time"

	"github.com/Mahesh61437/AquaticExoticaBackend/configs"
	"github.com/Mahesh61437/AquaticExoticaBackend/models"
	"github.com/Mahesh61437/AquaticExoticaBackend/responses"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func notificationCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "notifications")
}

func listNotifications(c *fiber.Ctx, filter bson.M) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
	if err != nil || limit < 1 {
		limit = 20
	}

	total, err := notificationCollection().CountDocuments(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error counting notifications",
		})
	}

	findOptions := options.Find()
	findOptions.SetSkip((page - 1) * limit)
	findOptions.SetLimit(limit)
	findOptions.SetSort(bson.D{{Key: "createdAt", Value: -1}})

	notifications := make([]models.AppNotification, 0)
	cursor, err := notificationCollection().Find(ctx, filter, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching notifications",
		})
	}
	if err := cursor.All(ctx, &notifications); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing notifications",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Notifications fetched successfully",
		Result: &fiber.Map{
			"notifications": notifications,
			"currentPage":   page,
			"totalPages":    (total + limit - 1) / limit,
			"total":         total,
		},
	})
}

func GetMyNotifications(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(string)
	userObjID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user ID format",
		})
	}

	return listNotifications(c, bson.M{"userId": userObjID})
}

// GetAdminNotifications serves the global feed (entries without a user).
func GetAdminNotifications(c *fiber.Ctx) error {
	return listNotifications(c, bson.M{"userId": nil})
}

func MarkNotificationRead(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	notificationObjID, err := primitive.ObjectIDFromHex(c.Params("notificationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid notification ID format",
		})
	}

	userId, _ := c.Locals("userId").(string)
	userObjID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user ID format",
		})
	}

	result, err := notificationCollection().UpdateOne(ctx,
		bson.M{"_id": notificationObjID, "userId": userObjID},
		bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating notification",
		})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Notification not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Notification marked as read",
	})
}
