package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jorsalda/SistPROF/internal/application/admin"
	"github.com/jorsalda/SistPROF/internal/application/auth"
	"github.com/jorsalda/SistPROF/internal/application/docente"
	"github.com/jorsalda/SistPROF/internal/application/permiso"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	DocenteUC *docente.UseCase
	PermisoUC *permiso.UseCase
	AdminUC   *admin.UseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Docentes (protegido)
	docentes := protected.Group("/docentes")
	docenteHandler := NewDocenteHandler(deps.DocenteUC)
	docentes.Post("/", docenteHandler.Create)
	docentes.Get("/", docenteHandler.List)
	docentes.Get("/:id", docenteHandler.GetByID)
	docentes.Put("/:id", docenteHandler.Update)
	docentes.Delete("/:id", docenteHandler.Delete)

	// Permisos de docentes (protegido)
	permisos := protected.Group("/permisos")
	permisoHandler := NewPermisoHandler(deps.PermisoUC)
	permisos.Post("/", permisoHandler.Create)
	permisos.Get("/", permisoHandler.List)
	permisos.Get("/:id", permisoHandler.GetByID)
	permisos.Delete("/:id", permisoHandler.Delete)

	// Administración (protegido + rol admin)
	adminGroup := protected.Group("/admin", RequireAdmin())
	adminHandler := NewAdminHandler(deps.AdminUC)
	adminGroup.Get("/usuarios", adminHandler.ListUsuarios)
	adminGroup.Get("/usuarios/:id", adminHandler.GetUsuario)
	adminGroup.Post("/usuarios/:id/aprobar", adminHandler.Aprobar)
	adminGroup.Post("/usuarios/:id/bloquear", adminHandler.Bloquear)
	adminGroup.Post("/usuarios/:id/activar", adminHandler.Activar)
	adminGroup.Post("/usuarios/:id/desbloquear", adminHandler.Desbloquear)
	adminGroup.Post("/usuarios/:id/dias-prueba", adminHandler.ModificarDias)
	adminGroup.Get("/estadisticas", adminHandler.Estadisticas)
	adminGroup.Get("/proximos-a-vencer", adminHandler.ProximosAVencer)
}
