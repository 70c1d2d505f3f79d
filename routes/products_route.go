package routes

import (
	productController "github.com/Mahesh61437/AquaticExoticaBackend/controllers/products"
	"github.com/Mahesh61437/AquaticExoticaBackend/middlewares"

	"github.com/gofiber/fiber/v2"
)

func ProductsRoute(app *fiber.App) {
	app.Get("/api/products", productController.GetAllProducts)
	app.Get("/api/products/details", productController.FetchProductDetails)
	app.Post("/api/products", middlewares.AuthMiddleware, middlewares.AdminMiddleware, productController.AddProduct)
	app.Patch("/api/products/:productId", middlewares.AuthMiddleware, middlewares.AdminMiddleware, productController.UpdateProduct)

	app.Get("/api/categories", productController.GetCategories)
	app.Post("/api/categories", middlewares.AuthMiddleware, middlewares.AdminMiddleware, productController.AddCategory)

	app.Post("/api/products/notify-stock", middlewares.AuthMiddleware, productController.SubscribeStockNotification)
	app.Get("/api/products/notify-stock", middlewares.AuthMiddleware, productController.GetStockSubscriptions)
}
