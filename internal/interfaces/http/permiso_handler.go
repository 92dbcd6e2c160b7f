package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jorsalda/SistPROF/internal/application/dto"
	"github.com/jorsalda/SistPROF/internal/application/permiso"
)

// PermisoHandler maneja las peticiones HTTP para Permiso (protegido).
type PermisoHandler struct {
	uc *permiso.UseCase
}

// NewPermisoHandler construye el handler.
func NewPermisoHandler(uc *permiso.UseCase) *PermisoHandler {
	return &PermisoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar permiso
// @Tags         permisos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePermisoRequest  true  "Datos del permiso"
// @Success      201   {object}  dto.PermisoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/permisos [post]
func (h *PermisoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePermisoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.DocenteID == "" || in.FechaInicio == "" || in.FechaFin == "" || in.Tipo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "docente_id, fecha_inicio, fecha_fin y tipo son requeridos"})
	}
	out, err := h.uc.Crear(GetIdentidad(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar permisos del colegio
// @Tags         permisos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PermisoListResponse
// @Router       /api/permisos [get]
func (h *PermisoHandler) List(c *fiber.Ctx) error {
	limit, offset := pagina(c)
	out, err := h.uc.Listar(GetIdentidad(c), c.Query("colegio_id"), limit, offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener permiso por ID
// @Tags         permisos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del permiso"
// @Success      200  {object}  dto.PermisoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/permisos/{id} [get]
func (h *PermisoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(GetIdentidad(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar permiso
// @Tags         permisos
// @Security     Bearer
// @Param        id  path  string  true  "ID del permiso"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/permisos/{id} [delete]
func (h *PermisoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(GetIdentidad(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
