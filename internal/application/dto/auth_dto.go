package dto

import "time"

// RegisterRequest entrada para registro: email, password y nombre del colegio.
// El colegio se crea si no existe (find-or-create por nombre).
type RegisterRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	ColegioNombre string `json:"colegio" validate:"required,min=1,max=150"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UsuarioResponse salida de un usuario (sin password).
type UsuarioResponse struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	ColegioID       string     `json:"colegio_id"`
	Rol             string     `json:"rol"`
	Estatus         string     `json:"estatus"`
	FechaRegistro   time.Time  `json:"fecha_registro"`
	FechaExpiracion *time.Time `json:"fecha_expiracion,omitempty"`
	FechaAprobacion *time.Time `json:"fecha_aprobacion,omitempty"`
	DiasPrueba      int        `json:"dias_prueba"`
}

// LoginResponse salida con token JWT y los datos del usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
