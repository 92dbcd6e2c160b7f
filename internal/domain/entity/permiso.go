package entity

import "time"

// Permiso registro de ausencia aprobada de un docente.
// Lleva ColegioID propio para que el control de acceso por colegio
// no dependa de un join con docentes.
type Permiso struct {
	ID            string
	DocenteID     string
	ColegioID     string
	FechaInicio   time.Time
	FechaFin      time.Time
	Tipo          string
	Observacion   string
	FechaCreacion time.Time
}
