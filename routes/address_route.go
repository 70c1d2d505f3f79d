package routes

import (
	addressController "github.com/Mahesh61437/AquaticExoticaBackend/controllers/addresses"
	"github.com/Mahesh61437/AquaticExoticaBackend/middlewares"

	"github.com/gofiber/fiber/v2"
)

func AddressRoutes(app *fiber.App) {
	app.Post("/api/addresses", middlewares.AuthMiddleware, addressController.AddAddress)
	app.Get("/api/addresses", middlewares.AuthMiddleware, addressController.GetAddresses)
	app.Put("/api/addresses", middlewares.AuthMiddleware, addressController.EditAddress)
	app.Delete("/api/addresses", middlewares.AuthMiddleware, addressController.DeleteAddress)
}
