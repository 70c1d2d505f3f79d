package routes

import (
	accountController "github.com/Mahesh61437/AquaticExoticaBackend/controllers/accounts"
	"github.com/Mahesh61437/AquaticExoticaBackend/middlewares"

	"github.com/gofiber/fiber/v2"
)

func AccountRoute(app *fiber.App) {
	app.Patch("/api/account/profile", middlewares.AuthMiddleware, accountController.UpdateUserProfile)
	app.Patch("/api/users/:userId/role", middlewares.AuthMiddleware, middlewares.AdminMiddleware, accountController.UpdateUserRole)
}
