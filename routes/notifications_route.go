package routes

import (
	notificationController "github.com/Mahesh61437/AquaticExoticaBackend/controllers/notifications"
	"github.com/Mahesh61437/AquaticExoticaBackend/middlewares"

	"github.com/gofiber/fiber/v2"
)

func NotificationRoutes(app *fiber.App) {
	app.Get("/api/notifications", middlewares.AuthMiddleware, notificationController.GetMyNotifications)
	app.Get("/api/notifications/admin", middlewares.AuthMiddleware, middlewares.AdminMiddleware, notificationController.GetAdminNotifications)
	app.Patch("/api/notifications/:notificationId/read", middlewares.AuthMiddleware, notificationController.MarkNotificationRead)
}
