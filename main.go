package main

import (
	"context"
	"os"
	"time"

	"github.com/Mahesh61437/AquaticExoticaBackend/configs"
	"github.com/Mahesh61437/AquaticExoticaBackend/logging"
	"github.com/Mahesh61437/AquaticExoticaBackend/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	configs.LoadEnv()
	log := logging.Setup("aquaticexotica-backend")

	app := fiber.New()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := configs.EnsureIndexes(ctx); err != nil {
		log.Error("failed to ensure indexes", "error", err)
		os.Exit(1)
	}

	routes.UserRoute(app)
	routes.AccountRoute(app)
	routes.ProductsRoute(app)
	routes.AddressRoutes(app)
	routes.CartRoutes(app)
	routes.OrderRoutes(app)
	routes.PaymentRoutes(app)
	routes.NotificationRoutes(app)
	routes.ContactRoute(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Info("starting server", "port", port)
	if err := app.Listen(":" + port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
