package controllers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Mahesh61437/AquaticExoticaBackend/configs"
	"github.com/Mahesh61437/AquaticExoticaBackend/gateway"
	"github.com/Mahesh61437/AquaticExoticaBackend/models"
	"github.com/Mahesh61437/AquaticExoticaBackend/notifier"
	"github.com/Mahesh61437/AquaticExoticaBackend/responses"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func paymentCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "payments")
}

func orderCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "orders")
}

func userCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB(), "users")
}

func gatewayConfig() gateway.Config {
	return gateway.Config{
		Key:        configs.EnvPayUMerchantKey(),
		Salt:       configs.EnvPayUMerchantSalt(),
		BaseURL:    configs.EnvPayUBaseURL(),
		SuccessURL: configs.EnvPayUSuccessURL(),
		FailureURL: configs.EnvPayUFailureURL(),
	}
}

// newTxnID returns a fresh 20-char hex transaction id.
func newTxnID() string {
	u := uuid.New()
	return strings.ReplaceAll(u.String(), "-", "")[:20]
}

// InitiatePayment creates the payment record for an order the caller owns
// and returns the signed field set the PayU redirect form needs.
func InitiatePayment(c *fiber.Ctx) error {
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

	orderObjectID, err := primitive.ObjectIDFromHex(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
		})
	}

	var order models.Order
	err = orderCollection().FindOne(ctx, bson.M{"_id": orderObjectID, "userId": userObjectID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order not found or doesn't belong to user",
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch order",
		})
	}

	var user models.User
	if err := userCollection().FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user details",
		})
	}

	txnid := newTxnID()
	amount := order.GrandTotal()
	productinfo := fmt.Sprintf("Order #%s", order.ID.Hex())
	firstname := user.FirstName()

	now := time.Now()
	payment := models.Payment{
		Id:        primitive.NewObjectID(),
		TxnID:     txnid,
		OrderID:   order.ID,
		UserID:    userObjectID,
		Amount:    amount,
		Status:    models.PaymentStatusInitiated,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := paymentCollection().InsertOne(ctx, payment); err != nil {
		// The unique orderId index makes a second initiation fail here.
		if mongo.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusConflict).JSON(responses.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: "Payment already initiated for this order",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create payment record",
		})
	}

	cfg := gatewayConfig()
	hash := cfg.RequestHash(txnid, amount, productinfo, firstname, user.Email)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"key":         cfg.Key,
		"txnid":       txnid,
		"amount":      amount,
		"productinfo": productinfo,
		"firstname":   firstname,
		"email":       user.Email,
		"hash":        hash,
		"surl":        cfg.SuccessURL,
		"furl":        cfg.FailureURL,
		"payu_url":    cfg.BaseURL,
	})
}

// PaymentWebhook handles the server-to-server callback from PayU. There is
// no bearer auth here; the hash verification is the authentication. The
// response bodies are plain text per the gateway contract.
func PaymentWebhook(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	cb := gateway.Callback{
		TxnID:       c.FormValue("txnid"),
		Status:      c.FormValue("status"),
		Hash:        c.FormValue("hash"),
		Email:       c.FormValue("email"),
		Firstname:   c.FormValue("firstname"),
		Productinfo: c.FormValue("productinfo"),
		Amount:      c.FormValue("amount"),
	}

	var payment models.Payment
	err := paymentCollection().FindOne(ctx, bson.M{"txnid": cb.TxnID}).Decode(&payment)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid txnid")
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Lookup failed")
	}

	if !gatewayConfig().VerifyCallback(cb) {
		slog.Warn("payment webhook hash mismatch",
			"txnid", cb.TxnID, "status", cb.Status)
		return c.Status(fiber.StatusForbidden).SendString("Hash mismatch")
	}

	outcome := reconcile(payment, cb.Status)
	if outcome.Replay {
		// Gateway retry of an already applied callback.
		return c.Status(fiber.StatusOK).SendString("Webhook processed")
	}
	if outcome.Conflict {
		slog.Warn("payment webhook status conflict after verification",
			"txnid", cb.TxnID, "verifiedStatus", payment.Status, "receivedStatus", cb.Status)
		return c.Status(fiber.StatusConflict).SendString("Transaction already verified")
	}

	rawPayload := make(map[string]string)
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		rawPayload[string(key)] = string(value)
	})

	var order models.Order
	orderLoaded := false
	if outcome.OrderStatus != "" {
		if err := orderCollection().FindOne(ctx, bson.M{"_id": payment.OrderID}).Decode(&order); err == nil {
			orderLoaded = true
		}
	}

	_, err = configs.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		_, err := paymentCollection().UpdateOne(sc,
			bson.M{"_id": payment.Id},
			bson.M{"$set": bson.M{
				"status":          outcome.PaymentStatus,
				"verified":        true,
				"gatewayResponse": rawPayload,
				"updatedAt":       time.Now(),
			}})
		if err != nil {
			return nil, err
		}

		if outcome.OrderStatus != "" {
			_, err = orderCollection().UpdateOne(sc,
				bson.M{"_id": payment.OrderID},
				bson.M{"$set": bson.M{"status": outcome.OrderStatus, "updatedAt": time.Now()}})
			if err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		slog.Error("payment reconciliation failed", "txnid", cb.TxnID, "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Reconciliation failed")
	}

	if outcome.OrderStatus != "" && orderLoaded {
		oldStatus := order.Status
		order.Status = outcome.OrderStatus
		notifier.OrderStatusChanged(ctx, order, oldStatus, outcome.OrderStatus)
	}

	return c.Status(fiber.StatusOK).SendString("Webhook processed")
}
