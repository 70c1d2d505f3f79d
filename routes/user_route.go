package routes

import (
	userController "github.com/Mahesh61437/AquaticExoticaBackend/controllers/user"

	"github.com/gofiber/fiber/v2"
)

func UserRoute(app *fiber.App) {
	app.Post("/api/users/signup", userController.UserSignUp)
	app.Post("/api/users/signin", userController.UserSignIn)
}
