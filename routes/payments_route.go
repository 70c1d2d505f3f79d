package routes

import (
	paymentController "github.com/Mahesh61437/AquaticExoticaBackend/controllers/payments"
	"github.com/Mahesh61437/AquaticExoticaBackend/middlewares"

	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	app.Post("/api/payments/initiate/:orderId", middlewares.AuthMiddleware, paymentController.InitiatePayment)
	// Webhook is authenticated by its hash, not a bearer token.
	app.Post("/api/payments/webhook", paymentController.PaymentWebhook)
}
