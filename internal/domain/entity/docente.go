package entity

import "time"

// Docente profesor registrado por un colegio.
type Docente struct {
	ID            string
	ColegioID     string
	Nombre        string
	Documento     string
	Telefono      string
	Email         string
	Activo        bool
	FechaCreacion time.Time
}
