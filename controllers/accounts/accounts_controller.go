package controllers

import (
	"context"
	"time"

	"github.com/Mahesh61437/AquaticExoticaBackend/configs"
	"github.com/Mahesh61437/AquaticExoticaBackend/models"
	"github.com/Mahesh61437/AquaticExoticaBackend/responses"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func userCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "users")
}

// UpdateUserProfile applies a partial update: only fields present in the
// request body change.
func UpdateUserProfile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user ID format",
		})
	}

	var reqBody struct {
		Name     *string `json:"name"`
		ImageUrl *string `json:"profileImage"`
		Phone    *string `json:"phone"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	update := bson.M{"updatedAt": time.Now()}
	if reqBody.Name != nil {
		if *reqBody.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Name cannot be empty",
			})
		}
		update["name"] = *reqBody.Name
	}
	if reqBody.ImageUrl != nil {
		update["profileImage"] = *reqBody.ImageUrl
	}
	if reqBody.Phone != nil {
		update["phone"] = *reqBody.Phone
	}

	result, err := userCollection().UpdateOne(ctx, bson.M{"_id": userObjectID}, bson.M{"$set": update})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating user profile",
		})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile updated successfully",
		Result:  &fiber.Map{"data": update},
	})
}

// UpdateUserRole lets an admin change another user's role. Admins cannot
// demote themselves.
func UpdateUserRole(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	adminId, _ := c.Locals("userId").(string)

	targetId := c.Params("userId")
	targetObjID, err := primitive.ObjectIDFromHex(targetId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
		})
	}

	var reqBody struct {
		Type string `json:"type"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	if reqBody.Type != models.UserTypeCustomer && reqBody.Type != models.UserTypeAdmin {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Role must be 'user' or 'admin'",
		})
	}

	if targetId == adminId && reqBody.Type != models.UserTypeAdmin {
		return c.Status(fiber.StatusForbidden).JSON(responses.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Admins cannot revoke their own admin rights",
		})
	}

	result, err := userCollection().UpdateOne(ctx,
		bson.M{"_id": targetObjID},
		bson.M{"$set": bson.M{"type": reqBody.Type, "updatedAt": time.Now()}})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating user role",
		})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User role updated successfully",
	})
}
