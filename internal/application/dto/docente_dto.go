package dto

import "time"

// CreateDocenteRequest entrada para registrar un docente.
type CreateDocenteRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=150"`
	Documento string `json:"documento" validate:"omitempty,max=20"`
	Telefono  string `json:"telefono" validate:"omitempty,max=20"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// UpdateDocenteRequest campos opcionales a actualizar.
type UpdateDocenteRequest struct {
	Nombre    *string `json:"nombre"`
	Documento *string `json:"documento"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Activo    *bool   `json:"activo"`
}

// DocenteResponse salida de un docente.
type DocenteResponse struct {
	ID            string    `json:"id"`
	ColegioID     string    `json:"colegio_id"`
	Nombre        string    `json:"nombre"`
	Documento     string    `json:"documento,omitempty"`
	Telefono      string    `json:"telefono,omitempty"`
	Email         string    `json:"email,omitempty"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// DocenteListResponse listado paginado de docentes.
type DocenteListResponse struct {
	Items  []DocenteResponse `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
