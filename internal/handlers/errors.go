package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"inventario/internal/dto"
	"inventario/internal/services"
	"inventario/pkg/logger"
)

// writeError maps a service error onto its HTTP status and error body.
// Anything unclassified is logged and reported as a 500.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var serviceErr *services.Error
	if !errors.As(err, &serviceErr) || errors.Is(err, services.ErrConcurrentUpdate) {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "an unexpected error occurred",
		})
	}

	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, services.ErrValidation):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, services.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, services.ErrConflict):
		status, code = fiber.StatusConflict, "CONFLICT"
	}
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:    code,
		Message: serviceErr.Message,
		Errors:  serviceErr.Fields,
	})
}

func invalidBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "INVALID_BODY",
		Message: fmt.Sprintf("invalid request body: %v", err),
	})
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "INVALID_ID",
		Message: fmt.Sprintf("invalid ID %q", c.Params("id")),
	})
}

// parseID reads the :id route parameter as a non-negative integer.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, fmt.Errorf("negative ID %d", id)
	}
	return uint(id), nil
}
