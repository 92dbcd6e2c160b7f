package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin   = "admin"   // superadministrador, acceso a cualquier colegio
	RolColegio = "colegio" // cuenta ligada a un único colegio
)

// Estatus de ciclo de vida de la cuenta. "expirado" no se almacena:
// se deriva de FechaExpiracion en el momento de autenticar.
const (
	EstatusPendiente = "pendiente" // registrado, en período de prueba, sin aprobar
	EstatusActivo    = "activo"    // aprobado por un administrador
	EstatusBloqueado = "bloqueado" // desactivado por un administrador
)

// Usuario representa una cuenta del sistema (pertenece a un Colegio).
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	ColegioID    string
	Rol          string // admin, colegio
	Estatus      string // pendiente, activo, bloqueado

	FechaRegistro   time.Time
	FechaExpiracion *time.Time // nil = aprobado de forma permanente
	FechaAprobacion *time.Time
	DiasPrueba      int

	// Campos de seguridad del login: contador de fallos consecutivos y
	// bloqueo temporal. Se mutan bajo la fila serializada (FOR UPDATE).
	FailedAttempts int
	LockedUntil    *time.Time
}

// EsAdmin indica si la cuenta es superadministrador.
func (u *Usuario) EsAdmin() bool {
	return u.Rol == RolAdmin
}

// BloqueadoTemporalmente indica si el bloqueo por intentos fallidos sigue vigente.
func (u *Usuario) BloqueadoTemporalmente(ahora time.Time) bool {
	return u.LockedUntil != nil && u.LockedUntil.After(ahora)
}

// Expirado indica si el período de prueba terminó sin aprobación.
// Una cuenta aprobada tiene FechaExpiracion en nil y nunca expira.
func (u *Usuario) Expirado(ahora time.Time) bool {
	return u.FechaExpiracion != nil && u.FechaExpiracion.Before(ahora)
}
