package controllers

import (
	"context"
	"strconv"
	"time"

	"github.com/Mahesh61437/AquaticExoticaBackend/configs"
	"github.com/Mahesh61437/AquaticExoticaBackend/models"
	"github.com/Mahesh61437/AquaticExoticaBackend/notifier"
	"github.com/Mahesh61437/AquaticExoticaBackend/responses"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

const lowStockThreshold = 5

func productCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "products")
}

func GetAllProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	skip := (page - 1) * limit

	filter := bson.M{"isActive": true}
	if name := c.Query("name"); name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	if tag := c.Query("tag"); tag != "" {
		filter["tags"] = tag
	}

	totalProducts, err := productCollection().CountDocuments(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error counting products",
		})
	}

	findOptions := options.Find()
	findOptions.SetSkip(skip)
	findOptions.SetLimit(limit)
	findOptions.SetSort(bson.D{{Key: "createdAt", Value: -1}})

	products := make([]models.Product, 0)
	cursor, err := productCollection().Find(ctx, filter, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching products",
		})
	}
	if err = cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing products",
		})
	}

	totalPages := (totalProducts + limit - 1) / limit

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched Products",
		Result: &fiber.Map{
			"currentPage":   page,
			"totalPages":    totalPages,
			"totalProducts": totalProducts,
			"products":      products,
		},
	})
}

func FetchProductDetails(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Query("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}

	var product models.Product
	err = productCollection().FindOne(ctx, bson.M{"_id": objectId}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product details",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product fetched successfully",
		Result:  &fiber.Map{"product": product},
	})
}

// AddProduct is admin only.
func AddProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing product data",
		})
	}

	if err := validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Product name and price are required",
		})
	}

	price, err := models.ParseMoney(product.Price)
	if err != nil || price.Sign() <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Price must be a positive decimal amount",
		})
	}
	product.Price = models.FormatMoney(price)
	if product.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Stock cannot be negative",
		})
	}

	now := time.Now()
	product.ID = primitive.NewObjectID()
	product.IsActive = true
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := productCollection().InsertOne(ctx, product); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error inserting product",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product added successfully",
		Result:  &fiber.Map{"product": product},
	})
}

// UpdateProduct is admin only. It is also the restock trigger point: a save
// that moves stock to a value > 0 dispatches back-in-stock alerts, and one
// that leaves stock under the threshold raises a low-stock admin alert.
func UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productObjID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}

	var reqBody struct {
		Name           *string          `json:"name"`
		Description    *string          `json:"description"`
		Price          *decimal.Decimal `json:"price"`
		CompareAtPrice *decimal.Decimal `json:"compareAtPrice"`
		Category       *string          `json:"category"`
		Tags           *[]string        `json:"tags"`
		Images         *[]string        `json:"images"`
		Stock          *int             `json:"stock"`
		IsActive       *bool            `json:"isActive"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	var existing models.Product
	err = productCollection().FindOne(ctx, bson.M{"_id": productObjID}).Decode(&existing)
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

	update := bson.M{"updatedAt": time.Now()}
	if reqBody.Name != nil {
		update["name"] = *reqBody.Name
		existing.Name = *reqBody.Name
	}
	if reqBody.Description != nil {
		update["description"] = *reqBody.Description
	}
	if reqBody.Price != nil {
		if reqBody.Price.Sign() <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Price must be a positive decimal amount",
			})
		}
		update["price"] = models.FormatMoney(*reqBody.Price)
	}
	if reqBody.CompareAtPrice != nil {
		update["compareAtPrice"] = models.FormatMoney(*reqBody.CompareAtPrice)
	}
	if reqBody.Category != nil {
		update["category"] = *reqBody.Category
	}
	if reqBody.Tags != nil {
		update["tags"] = *reqBody.Tags
	}
	if reqBody.Images != nil {
		update["images"] = *reqBody.Images
	}
	if reqBody.IsActive != nil {
		update["isActive"] = *reqBody.IsActive
	}

	oldStock := existing.Stock
	newStock := oldStock
	if reqBody.Stock != nil {
		if *reqBody.Stock < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Stock cannot be negative",
			})
		}
		newStock = *reqBody.Stock
		update["stock"] = newStock
		existing.Stock = newStock
	}

	_, err = productCollection().UpdateOne(ctx, bson.M{"_id": productObjID}, bson.M{"$set": update})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating product",
		})
	}

	if shouldNotifyRestock(oldStock, newStock) {
		dispatchRestockNotifications(ctx, existing)
	}
	if newStock < lowStockThreshold {
		notifier.LowStock(ctx, existing)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product updated successfully",
		Result:  &fiber.Map{"product": existing},
	})
}
