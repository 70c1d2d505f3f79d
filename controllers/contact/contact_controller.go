package contactController

import (
	"context"
	"fmt"
	"time"

	"github.com/Mahesh61437/AquaticExoticaBackend/models"
	"github.com/Mahesh61437/AquaticExoticaBackend/notifier"
	"github.com/Mahesh61437/AquaticExoticaBackend/responses"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// SubmitContactForm feeds the store's contact form into the admin
// notification feed. No auth: anyone browsing the shop can write in.
func SubmitContactForm(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody contactRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}
	if err := validate.Struct(reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Name, a valid email, subject and message are required",
		})
	}

	notifier.Notify(ctx, models.NotificationContactMessage,
		fmt.Sprintf("Contact: %s", reqBody.Subject),
		reqBody.Message,
		map[string]interface{}{"name": reqBody.Name, "email": reqBody.Email},
		nil)

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Thank you! Your message has been sent successfully.",
	})
}
