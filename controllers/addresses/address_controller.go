package addressController

import (
	"context"
	"time"

	"github.com/Mahesh61437/AquaticExoticaBackend/configs"
	"github.com/Mahesh61437/AquaticExoticaBackend/models"
	"github.com/Mahesh61437/AquaticExoticaBackend/responses"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var validate = validator.New()

func addressCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "addresses")
}

func orderCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "orders")
}

type addressRequest struct {
	AddressLine1   string `json:"addressLine1" validate:"required"`
	AddressLine2   string `json:"addressLine2"`
	City           string `json:"city" validate:"required"`
	State          string `json:"state"`
	ZipCode        string `json:"zipCode"`
	Country        string `json:"country" validate:"required"`
	RecipientName  string `json:"recipientName"`
	RecipientPhone string `json:"recipientPhone"`
	IsDefault      bool   `json:"isDefault"`
}

func AddAddress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody addressRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if err := validate.Struct(reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "addressLine1, city and country are required",
		})
	}

	userId, _ := c.Locals("userId").(string)
	userObjId, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	now := time.Now()
	newAddress := models.ShippingAddress{
		Id:             primitive.NewObjectID(),
		UserId:         userObjId,
		AddressLine1:   reqBody.AddressLine1,
		AddressLine2:   reqBody.AddressLine2,
		City:           reqBody.City,
		State:          reqBody.State,
		ZipCode:        reqBody.ZipCode,
		Country:        reqBody.Country,
		RecipientName:  reqBody.RecipientName,
		RecipientPhone: reqBody.RecipientPhone,
		IsDefault:      reqBody.IsDefault,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := insertAddress(ctx, newAddress); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error adding address",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Address added successfully",
		Result:  &fiber.Map{"address": newAddress},
	})
}

// defaultUnsetFilter matches the other default addresses of one user. It
// never crosses user boundaries, and excluding the address being written
// keeps exactly one default after the paired update commits.
func defaultUnsetFilter(userID primitive.ObjectID, exclude *primitive.ObjectID) bson.M {
	filter := bson.M{"userId": userID, "isDefault": true}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	return filter
}

// insertAddress persists the address. When the new address is the default,
// the unset-then-insert pair runs in one transaction so there is never a
// window with two defaults for the user.
func insertAddress(ctx context.Context, address models.ShippingAddress) error {
	if !address.IsDefault {
		_, err := addressCollection().InsertOne(ctx, address)
		return err
	}

	_, err := configs.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := addressCollection().UpdateMany(sc,
			defaultUnsetFilter(address.UserId, nil),
			bson.M{"$set": bson.M{"isDefault": false}}); err != nil {
			return nil, err
		}
		return addressCollection().InsertOne(sc, address)
	})
	return err
}

func GetAddresses(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, _ := c.Locals("userId").(string)
	userObjId, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	addresses := make([]models.ShippingAddress, 0)
	cursor, err := addressCollection().Find(ctx, bson.M{"userId": userObjId})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching addresses",
		})
	}
	if err := cursor.All(ctx, &addresses); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error decoding addresses",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Addresses fetched successfully",
		Result:  &fiber.Map{"addresses": addresses},
	})
}

// DeleteAddress refuses to remove an address any order still references.
func DeleteAddress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	objId, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid address ID format",
		})
	}

	userId, _ := c.Locals("userId").(string)
	userObjId, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	referencing, err := orderCollection().CountDocuments(ctx, bson.M{"shippingAddressId": objId})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error checking address references",
		})
	}
	if referencing > 0 {
		return c.Status(fiber.StatusConflict).JSON(responses.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Address is referenced by existing orders and cannot be deleted",
		})
	}

	result, err := addressCollection().DeleteOne(ctx, bson.M{
		"_id":    objId,
		"userId": userObjId,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting address",
		})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Address not found or you don't have permission to delete it",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Address deleted successfully",
	})
}

func EditAddress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	addressObjId, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid address ID format",
		})
	}

	var reqBody addressRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if err := validate.Struct(reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "addressLine1, city and country are required",
		})
	}

	userId, _ := c.Locals("userId").(string)
	userObjId, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	update := bson.M{
		"addressLine1":   reqBody.AddressLine1,
		"addressLine2":   reqBody.AddressLine2,
		"city":           reqBody.City,
		"state":          reqBody.State,
		"zipCode":        reqBody.ZipCode,
		"country":        reqBody.Country,
		"recipientName":  reqBody.RecipientName,
		"recipientPhone": reqBody.RecipientPhone,
		"isDefault":      reqBody.IsDefault,
		"updatedAt":      time.Now(),
	}
	filter := bson.M{"_id": addressObjId, "userId": userObjId}

	var result *mongo.UpdateResult
	if reqBody.IsDefault {
		// Keep the single-default invariant atomic.
		res, txErr := configs.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
			if _, err := addressCollection().UpdateMany(sc,
				defaultUnsetFilter(userObjId, &addressObjId),
				bson.M{"$set": bson.M{"isDefault": false}}); err != nil {
				return nil, err
			}
			return addressCollection().UpdateOne(sc, filter, bson.M{"$set": update})
		})
		if txErr == nil {
			result = res.(*mongo.UpdateResult)
		}
		err = txErr
	} else {
		result, err = addressCollection().UpdateOne(ctx, filter, bson.M{"$set": update})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating address",
		})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Address not found or you don't have permission to update it",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Address updated successfully",
	})
}
