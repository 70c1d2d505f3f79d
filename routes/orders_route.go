package routes

import (
	orderController "github.com/Mahesh61437/AquaticExoticaBackend/controllers/orders"
	"github.com/Mahesh61437/AquaticExoticaBackend/middlewares"

	"github.com/gofiber/fiber/v2"
)

func OrderRoutes(app *fiber.App) {
	app.Post("/api/orders", middlewares.AuthMiddleware, orderController.CreateOrder)
	app.Get("/api/orders", middlewares.AuthMiddleware, orderController.GetOrders)
	app.Get("/api/orders/details", middlewares.AuthMiddleware, orderController.GetOrderById)
	app.Patch("/api/orders/:orderId/update_status", middlewares.AuthMiddleware, middlewares.AdminMiddleware, orderController.UpdateOrderStatus)
}
