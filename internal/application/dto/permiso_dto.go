package dto

import "time"

// CreatePermisoRequest entrada para registrar un permiso de un docente.
// Las fechas llegan como "2006-01-02".
type CreatePermisoRequest struct {
	DocenteID   string `json:"docente_id" validate:"required"`
	FechaInicio string `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin    string `json:"fecha_fin" validate:"required,datetime=2006-01-02"`
	Tipo        string `json:"tipo" validate:"required,max=100"`
	Observacion string `json:"observacion" validate:"omitempty"`
}

// PermisoResponse salida de un permiso.
type PermisoResponse struct {
	ID            string    `json:"id"`
	DocenteID     string    `json:"docente_id"`
	ColegioID     string    `json:"colegio_id"`
	FechaInicio   string    `json:"fecha_inicio"`
	FechaFin      string    `json:"fecha_fin"`
	Tipo          string    `json:"tipo"`
	Observacion   string    `json:"observacion,omitempty"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// PermisoListResponse listado paginado de permisos.
type PermisoListResponse struct {
	Items  []PermisoResponse `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
