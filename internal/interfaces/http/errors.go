package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/leadscope-api/internal/application/dto"
	"github.com/jhoicas/leadscope-api/internal/domain"
)

// respondError mapea la taxonomía de errores del dominio a HTTP. Los
// fallos de transporte y NotFound se reportan al usuario y el estado no se
// muta; no hay reintentos automáticos (el reintento es del usuario).
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrNoteTooShort):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: domain.ErrNoteTooShort.Error()})
	case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.IsTransport(err):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "el backend no respondió correctamente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
