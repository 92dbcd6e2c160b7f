package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jorsalda/SistPROF/internal/application/dto"
	"github.com/jorsalda/SistPROF/internal/domain"
)

// responderError traduce los errores de dominio compartidos por los
// handlers CRUD y administrativos a respuestas HTTP. Lo que no reconoce se
// responde como fallo interno sin filtrar detalles de infraestructura.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNoAutenticado):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: domain.ErrNoAutenticado.Error()})
	case errors.Is(err, domain.ErrColegioAjeno):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "WRONG_TENANT", Message: domain.ErrColegioAjeno.Error()})
	case errors.Is(err, domain.ErrRolInsuficiente):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: domain.ErrRolInsuficiente.Error()})
	case errors.Is(err, domain.ErrAdminProtegido):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ADMIN_PROTECTED", Message: domain.ErrAdminProtegido.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	case errors.Is(err, domain.ErrDocenteDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: domain.ErrDocenteDuplicado.Error()})
	case errors.Is(err, domain.ErrRangoFechas):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: domain.ErrRangoFechas.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: domain.ErrInvalidInput.Error()})
	case errors.Is(err, domain.ErrConflicto):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: domain.ErrConflicto.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno, intente más tarde"})
	}
}
