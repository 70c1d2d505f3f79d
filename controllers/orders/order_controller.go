package controllers

import (
	"context"
	"strconv"
	"time"

	"github.com/Mahesh61437/AquaticExoticaBackend/configs"
	"github.com/Mahesh61437/AquaticExoticaBackend/models"
	"github.com/Mahesh61437/AquaticExoticaBackend/notifier"
	"github.com/Mahesh61437/AquaticExoticaBackend/responses"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func orderCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "orders")
}

func userCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "users")
}

func addressCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "addresses")
}

func productCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "products")
}

// CreateOrder validates the requested lines, snapshots prices, resolves or
// creates the shipping address and persists the whole aggregate atomically.
func CreateOrder(c *fiber.Ctx) error {
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
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
		})
	}

	var orderReq createOrderRequest
	if err := c.BodyParser(&orderReq); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := validateOrderRequest(orderReq); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var user models.User
	if err := userCollection().FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user details",
		})
	}

	products, err := fetchProducts(ctx, orderReq.Items)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching products",
		})
	}

	items, total, err := buildOrderItems(orderReq.Items, products)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var order models.Order

	if orderReq.ShippingAddressID != "" {
		addressObjectID, err := primitive.ObjectIDFromHex(orderReq.ShippingAddressID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid address ID format",
			})
		}

		// Address must belong to the requesting user.
		var address models.ShippingAddress
		if err := addressCollection().FindOne(ctx, bson.M{
			"_id":    addressObjectID,
			"userId": userObjectID,
		}).Decode(&address); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Address not found or doesn't belong to user",
			})
		}

		order = newOrder(userObjectID, address.Id, items, total, orderReq.ShippingCost)
		now := time.Now()
		order.CreatedAt = now
		order.UpdatedAt = now

		if _, err := orderCollection().InsertOne(ctx, order); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to create order in database",
			})
		}
	} else {
		// Inline address: address insert and order insert commit together
		// or not at all.
		now := time.Now()
		address := models.ShippingAddress{
			Id:             primitive.NewObjectID(),
			UserId:         userObjectID,
			AddressLine1:   orderReq.Address.AddressLine1,
			AddressLine2:   orderReq.Address.AddressLine2,
			City:           orderReq.Address.City,
			State:          orderReq.Address.State,
			ZipCode:        orderReq.Address.ZipCode,
			Country:        orderReq.Address.Country,
			RecipientName:  orderReq.Address.RecipientName,
			RecipientPhone: orderReq.Address.RecipientPhone,
			IsDefault:      orderReq.Address.IsDefault,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		order = newOrder(userObjectID, address.Id, items, total, orderReq.ShippingCost)
		order.CreatedAt = now
		order.UpdatedAt = now

		_, err := configs.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
			if address.IsDefault {
				if _, err := addressCollection().UpdateMany(sc,
					bson.M{"userId": userObjectID, "isDefault": true},
					bson.M{"$set": bson.M{"isDefault": false}}); err != nil {
					return nil, err
				}
			}
			if _, err := addressCollection().InsertOne(sc, address); err != nil {
				return nil, err
			}
			return orderCollection().InsertOne(sc, order)
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to create order in database",
			})
		}
	}

	notifier.OrderCreated(ctx, order, user)

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order created successfully",
		Result: &fiber.Map{
			"order":      order,
			"grandTotal": order.GrandTotal(),
		},
	})
}

// fetchProducts loads every product referenced by the requested lines.
// Unknown ids simply stay absent; the builder reports them.
func fetchProducts(ctx context.Context, items []orderItemRequest) (map[string]models.Product, error) {
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		objID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			continue
		}
		ids = append(ids, objID)
	}

	cursor, err := productCollection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var found []models.Product
	if err := cursor.All(ctx, &found); err != nil {
		return nil, err
	}

	products := make(map[string]models.Product, len(found))
	for _, p := range found {
		products[p.ID.Hex()] = p
	}
	return products, nil
}

func GetOrders(c *fiber.Ctx) error {
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
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
		})
	}

	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	skip := (page - 1) * limit

	// Admins see every order, customers only their own.
	var user models.User
	if err := userCollection().FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user details",
		})
	}

	filter := bson.M{}
	if user.Type != models.UserTypeAdmin {
		filter["userId"] = userObjectID
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	totalOrders, err := orderCollection().CountDocuments(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to count orders",
		})
	}

	findOptions := options.Find()
	findOptions.SetSkip(skip)
	findOptions.SetLimit(limit)
	findOptions.SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := orderCollection().Find(ctx, filter, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch orders",
		})
	}

	var fetched []models.Order
	if err := cursor.All(ctx, &fetched); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to decode orders",
		})
	}

	orders := make([]fiber.Map, 0, len(fetched))
	for _, order := range fetched {
		orders = append(orders, fiber.Map{
			"id":           order.ID.Hex(),
			"items":        order.Items,
			"status":       order.Status,
			"totalAmount":  order.TotalAmount,
			"shippingCost": order.ShippingCost,
			"grandTotal":   order.GrandTotal(),
			"createdAt":    order.CreatedAt,
		})
	}

	totalPages := (totalOrders + limit - 1) / limit

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Orders fetched successfully",
		Result: &fiber.Map{
			"orders":      orders,
			"currentPage": page,
			"totalPages":  totalPages,
			"totalOrders": totalOrders,
		},
	})
}

// orderDetailFilter scopes the lookup to the caller's own orders unless the
// caller is an admin, matching the list endpoint.
func orderDetailFilter(orderID, userID primitive.ObjectID, userType string) bson.M {
	filter := bson.M{"_id": orderID}
	if userType != models.UserTypeAdmin {
		filter["userId"] = userID
	}
	return filter
}

func GetOrderById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	orderObjectID, err := primitive.ObjectIDFromHex(c.Query("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
		})
	}
	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
		})
	}

	var user models.User
	if err := userCollection().FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user details",
		})
	}

	var order models.Order
	err = orderCollection().FindOne(ctx, orderDetailFilter(orderObjectID, userObjectID, user.Type)).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order not found",
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch order",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order fetched successfully",
		Result: &fiber.Map{
			"order":      order,
			"grandTotal": order.GrandTotal(),
		},
	})
}

// UpdateOrderStatus is admin only.
func UpdateOrderStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderObjectID, err := primitive.ObjectIDFromHex(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
		})
	}

	var reqBody struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if reqBody.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Status is required",
		})
	}
	if !models.ValidOrderStatus(reqBody.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Unknown order status",
		})
	}

	var order models.Order
	err = orderCollection().FindOne(ctx, bson.M{"_id": orderObjectID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order not found",
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch order",
		})
	}

	oldStatus := order.Status
	if oldStatus != reqBody.Status {
		_, err = orderCollection().UpdateOne(ctx,
			bson.M{"_id": orderObjectID},
			bson.M{"$set": bson.M{"status": reqBody.Status, "updatedAt": time.Now()}})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to update order",
			})
		}
		order.Status = reqBody.Status
		notifier.OrderStatusChanged(ctx, order, oldStatus, reqBody.Status)
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order status updated successfully",
		Result: &fiber.Map{
			"order":      order,
			"grandTotal": order.GrandTotal(),
		},
	})
}
