package routes

import (
	cartController "github.com/Mahesh61437/AquaticExoticaBackend/controllers/cart"
	"github.com/Mahesh61437/AquaticExoticaBackend/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CartRoutes(app *fiber.App) {
	app.Get("/api/cart", middlewares.AuthMiddleware, cartController.GetCart)
	app.Post("/api/cart/add", middlewares.AuthMiddleware, cartController.AddToCart)
	app.Put("/api/cart/update", middlewares.AuthMiddleware, cartController.UpdateCartItem)
	app.Delete("/api/cart/remove", middlewares.AuthMiddleware, cartController.RemoveFromCart)
}
