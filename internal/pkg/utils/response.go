package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ichidan-dokusho/place-api/internal/pkg/errors"
)

// The public API contract is the flat error body {"error": "<message>"},
// optionally extended with structured details (e.g. the usage breakdown on a
// blocked station delete).

type DeleteResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		body := fiber.Map{"error": appErr.Message}
		if len(appErr.Details) > 0 {
			body["details"] = appErr.Details
		}
		return c.Status(appErr.StatusCode).JSON(body)
	}

	// Unknown error - return 500 without leaking internals
	return c.Status(errors.ErrInternalServer.StatusCode).JSON(fiber.Map{
		"error": errors.ErrInternalServer.Message,
	})
}

func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func SendDeleted(c *fiber.Ctx, message string, id int) error {
	return c.JSON(DeleteResponse{Message: message, ID: id})
}
