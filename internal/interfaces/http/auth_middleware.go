package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jorsalda/SistPROF/internal/application/authz"
	"github.com/jorsalda/SistPROF/internal/application/dto"
	"github.com/jorsalda/SistPROF/internal/domain/entity"
	"github.com/jorsalda/SistPROF/pkg/jwt"
)

// Locals keys para la identidad en Fiber.
const (
	LocalUsuarioID = "usuario_id"
	LocalColegioID = "colegio_id"
	LocalRol       = "rol"
)

// AuthMiddleware valida el Bearer Token JWT y deja la identidad en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		usuarioID, colegioID, rol, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsuarioID, usuarioID)
		c.Locals(LocalColegioID, colegioID)
		c.Locals(LocalRol, rol)
		return c.Next()
	}
}

// RequireAdmin exige rol de superadministrador. Debe usarse DESPUÉS de
// AuthMiddleware. Un token sin claim de rol responde 401; un rol distinto
// de admin responde 403.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := GetRol(c)
		if rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin rol"})
		}
		if rol != entity.RolAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requieren permisos de superadministrador"})
		}
		return c.Next()
	}
}

// GetIdentidad arma la identidad autenticada desde c.Locals (después del
// middleware de auth). Valor cero si no hay sesión.
func GetIdentidad(c *fiber.Ctx) authz.Identidad {
	return authz.Identidad{
		UsuarioID: GetUsuarioID(c),
		ColegioID: GetColegioID(c),
		Rol:       GetRol(c),
	}
}

// GetUsuarioID devuelve el UsuarioID del contexto.
func GetUsuarioID(c *fiber.Ctx) string { return localString(c, LocalUsuarioID) }

// GetColegioID devuelve el ColegioID del contexto.
func GetColegioID(c *fiber.Ctx) string { return localString(c, LocalColegioID) }

// GetRol devuelve el rol del contexto.
func GetRol(c *fiber.Ctx) string { return localString(c, LocalRol) }

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
