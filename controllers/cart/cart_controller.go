package controllers

import (
	"context"
	"time"

	"github.com/Mahesh61437/AquaticExoticaBackend/configs"
	"github.com/Mahesh61437/AquaticExoticaBackend/models"
	"github.com/Mahesh61437/AquaticExoticaBackend/responses"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func userCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "users")
}

func productCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "products")
}

func currentUser(c *fiber.Ctx, ctx context.Context) (models.User, error) {
	userId, _ := c.Locals("userId").(string)
	userObjId, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return models.User{}, err
	}
	var user models.User
	err = userCollection().FindOne(ctx, bson.M{"_id": userObjId}).Decode(&user)
	return user, err
}

// GetCart joins the cart lines with the live catalog. Cart totals use
// current prices; prices are only locked at checkout.
func GetCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	user, err := currentUser(c, ctx)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Error fetching user details",
		})
	}

	ids := make([]primitive.ObjectID, 0, len(user.Cart))
	for _, item := range user.Cart {
		ids = append(ids, item.ProductID)
	}

	products := make(map[primitive.ObjectID]models.Product)
	if len(ids) > 0 {
		cursor, err := productCollection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error fetching cart products",
			})
		}
		var found []models.Product
		if err := cursor.All(ctx, &found); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error parsing cart products",
			})
		}
		for _, p := range found {
			products[p.ID] = p
		}
	}

	cartItems := make([]fiber.Map, 0, len(user.Cart))
	totalPrice := decimal.Zero
	totalItems := 0

	for _, item := range user.Cart {
		product, ok := products[item.ProductID]
		if !ok {
			// Product removed from the catalog since it was added.
			continue
		}

		price, err := models.ParseMoney(product.Price)
		if err != nil {
			continue
		}
		lineTotal := price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		totalPrice = totalPrice.Add(lineTotal)
		totalItems += item.Quantity

		cartItems = append(cartItems, fiber.Map{
			"product":    product,
			"quantity":   item.Quantity,
			"totalPrice": models.FormatMoney(lineTotal),
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Cart fetched successfully",
		Result: &fiber.Map{
			"cartItems":  cartItems,
			"totalItems": totalItems,
			"totalPrice": models.FormatMoney(totalPrice),
		},
	})
}

func AddToCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if reqBody.Quantity < 1 {
		reqBody.Quantity = 1
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
	if !product.IsInStock() {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Product is out of stock",
		})
	}

	user, err := currentUser(c, ctx)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Error fetching user details",
		})
	}

	// Merge with an existing line for the same product.
	updated := false
	for i, item := range user.Cart {
		if item.ProductID == productObjID {
			user.Cart[i].Quantity += reqBody.Quantity
			updated = true
			break
		}
	}
	if !updated {
		user.Cart = append(user.Cart, models.CartItem{
			ProductID: productObjID,
			Quantity:  reqBody.Quantity,
		})
	}

	if _, err := userCollection().UpdateOne(ctx,
		bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"cart": user.Cart, "updatedAt": time.Now()}}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating cart",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product added to cart",
		Result:  &fiber.Map{"cartCount": len(user.Cart)},
	})
}

func UpdateCartItem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if reqBody.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Quantity must be at least 1",
		})
	}

	productObjID, err := primitive.ObjectIDFromHex(reqBody.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}

	user, err := currentUser(c, ctx)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Error fetching user details",
		})
	}

	found := false
	for i, item := range user.Cart {
		if item.ProductID == productObjID {
			user.Cart[i].Quantity = reqBody.Quantity
			found = true
			break
		}
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not in cart",
		})
	}

	if _, err := userCollection().UpdateOne(ctx,
		bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"cart": user.Cart, "updatedAt": time.Now()}}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating cart",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Cart updated successfully",
	})
}

func RemoveFromCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productObjID, err := primitive.ObjectIDFromHex(c.Query("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}

	user, err := currentUser(c, ctx)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Error fetching user details",
		})
	}

	kept := make([]models.CartItem, 0, len(user.Cart))
	for _, item := range user.Cart {
		if item.ProductID != productObjID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(user.Cart) {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not in cart",
		})
	}

	if _, err := userCollection().UpdateOne(ctx,
		bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"cart": kept, "updatedAt": time.Now()}}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating cart",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product removed from cart",
		Result:  &fiber.Map{"cartCount": len(kept)},
	})
}
