package domain

import (
	"errors"
	"fmt"
	"time"
)

// Errores de dominio (sin dependencias externas). Todos son resultados
// recuperables de cara al usuario; los fallos de infraestructura se
// envuelven con %w y nunca se confunden con estos.
var (
	// Autenticación. El mensaje de credenciales es genérico a propósito:
	// no revela si el email existe.
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrCuentaInactiva        = errors.New("usuario no activo")
	ErrCuentaExpirada        = errors.New("cuenta expirada, contacte al administrador")

	// Registro.
	ErrEmailRegistrado = errors.New("el email ya está registrado")

	// Autorización.
	ErrNoAutenticado   = errors.New("no autenticado")
	ErrColegioAjeno    = errors.New("el recurso pertenece a otro colegio")
	ErrRolInsuficiente = errors.New("se requieren permisos de superadministrador")
	ErrAdminProtegido  = errors.New("no se puede modificar un superadministrador")

	// Genéricos.
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrConflicto        = errors.New("conflicto con el estado actual")
	ErrDocenteDuplicado = errors.New("este docente ya está registrado")
	ErrDocenteAjeno     = errors.New("el docente pertenece a otro colegio")
	ErrRangoFechas      = errors.New("la fecha fin debe ser igual o posterior a la fecha inicio")
)

// CuentaBloqueadaError bloqueo temporal por intentos fallidos.
// Lleva el tiempo restante para el mensaje al usuario.
type CuentaBloqueadaError struct {
	Restante time.Duration
}

func (e *CuentaBloqueadaError) Error() string {
	return fmt.Sprintf("cuenta bloqueada, intenta en %d segundos", e.SegundosRestantes())
}

// SegundosRestantes segundos que faltan para el desbloqueo, redondeados hacia arriba.
func (e *CuentaBloqueadaError) SegundosRestantes() int {
	s := int((e.Restante + time.Second - 1) / time.Second)
	if s < 0 {
		return 0
	}
	return s
}
