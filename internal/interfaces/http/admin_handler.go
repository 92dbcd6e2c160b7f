package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jorsalda/SistPROF/internal/application/admin"
	"github.com/jorsalda/SistPROF/internal/application/dto"
)

// AdminHandler acciones administrativas sobre cuentas (solo superadmin).
type AdminHandler struct {
	uc *admin.UseCase
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(uc *admin.UseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListUsuarios godoc
// @Summary      Listar usuarios del sistema
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.UsuarioListResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/admin/usuarios [get]
func (h *AdminHandler) ListUsuarios(c *fiber.Ctx) error {
	limit, offset := pagina(c)
	out, err := h.uc.ListarUsuarios(GetIdentidad(c), limit, offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetUsuario godoc
// @Summary      Detalle de un usuario
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/usuarios/{id} [get]
func (h *AdminHandler) GetUsuario(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerUsuario(GetIdentidad(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Aprobar godoc
// @Summary      Aprobar usuario (acceso permanente)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/usuarios/{id}/aprobar [post]
func (h *AdminHandler) Aprobar(c *fiber.Ctx) error {
	out, err := h.uc.Aprobar(c.Context(), GetIdentidad(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Bloquear godoc
// @Summary      Bloquear usuario
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/usuarios/{id}/bloquear [post]
func (h *AdminHandler) Bloquear(c *fiber.Ctx) error {
	out, err := h.uc.Bloquear(c.Context(), GetIdentidad(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Activar godoc
// @Summary      Reactivar usuario bloqueado
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/usuarios/{id}/activar [post]
func (h *AdminHandler) Activar(c *fiber.Ctx) error {
	out, err := h.uc.Activar(c.Context(), GetIdentidad(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Desbloquear godoc
// @Summary      Retirar el bloqueo temporal por intentos fallidos
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/usuarios/{id}/desbloquear [post]
func (h *AdminHandler) Desbloquear(c *fiber.Ctx) error {
	out, err := h.uc.Desbloquear(c.Context(), GetIdentidad(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ModificarDias godoc
// @Summary      Modificar días de prueba
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.ModificarDiasRequest  true  "Días de prueba"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/usuarios/{id}/dias-prueba [post]
func (h *AdminHandler) ModificarDias(c *fiber.Ctx) error {
	var in dto.ModificarDiasRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ModificarDiasPrueba(c.Context(), GetIdentidad(c), c.Params("id"), in.Dias)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Estadisticas godoc
// @Summary      Contadores del panel de administración
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EstadisticasResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/estadisticas [get]
func (h *AdminHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas(GetIdentidad(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ProximosAVencer godoc
// @Summary      Cuentas en prueba próximas a expirar
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProximoAVencer
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/proximos-a-vencer [get]
func (h *AdminHandler) ProximosAVencer(c *fiber.Ctx) error {
	out, err := h.uc.ProximosAVencer(GetIdentidad(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
