package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jorsalda/SistPROF/internal/application/docente"
	"github.com/jorsalda/SistPROF/internal/application/dto"
)

// DocenteHandler maneja las peticiones HTTP para Docente (protegido).
type DocenteHandler struct {
	uc *docente.UseCase
}

// NewDocenteHandler construye el handler.
func NewDocenteHandler(uc *docente.UseCase) *DocenteHandler {
	return &DocenteHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar docente
// @Tags         docentes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocenteRequest  true  "Datos del docente"
// @Success      201   {object}  dto.DocenteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/docentes [post]
func (h *DocenteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocenteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el nombre del docente es requerido"})
	}
	out, err := h.uc.Crear(GetIdentidad(c), c.Query("colegio_id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar docentes del colegio
// @Tags         docentes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.DocenteListResponse
// @Router       /api/docentes [get]
func (h *DocenteHandler) List(c *fiber.Ctx) error {
	limit, offset := pagina(c)
	out, err := h.uc.Listar(GetIdentidad(c), c.Query("colegio_id"), limit, offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener docente por ID
// @Tags         docentes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del docente"
// @Success      200  {object}  dto.DocenteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/docentes/{id} [get]
func (h *DocenteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(GetIdentidad(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar docente
// @Tags         docentes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del docente"
// @Param        body  body  dto.UpdateDocenteRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DocenteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/docentes/{id} [put]
func (h *DocenteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDocenteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(GetIdentidad(c), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar docente (y sus permisos)
// @Tags         docentes
// @Security     Bearer
// @Param        id  path  string  true  "ID del docente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/docentes/{id} [delete]
func (h *DocenteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(GetIdentidad(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pagina lee limit/offset con los topes habituales.
func pagina(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
