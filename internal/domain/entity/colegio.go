package entity

import "time"

// Colegio institución dueña de sus usuarios, docentes y permisos.
type Colegio struct {
	ID            string
	Nombre        string // único en el sistema
	FechaCreacion time.Time
}
