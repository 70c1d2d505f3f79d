package routes

import (
	contactController "github.com/Mahesh61437/AquaticExoticaBackend/controllers/contact"

	"github.com/gofiber/fiber/v2"
)

func ContactRoute(app *fiber.App) {
	app.Post("/api/contact", contactController.SubmitContactForm)
}
