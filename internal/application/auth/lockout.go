package auth

import (
	"time"

	"github.com/jorsalda/SistPROF/internal/domain/entity"
)

// DecisionBloqueo resultado de registrar un intento fallido.
type DecisionBloqueo struct {
	Bloqueado    bool
	DesbloqueoEn *time.Time
}

// RegistrarFallo incrementa el contador de intentos fallidos y decide si
// corresponde activar un bloqueo temporal. Al activarse, el contador vuelve
// a 0: cada bloqueo abre una ventana de conteo nueva. El caller debe
// persistir el usuario bajo la fila serializada.
func RegistrarFallo(u *entity.Usuario, ahora time.Time, maxIntentos int, duracion time.Duration) DecisionBloqueo {
	u.FailedAttempts++
	if u.FailedAttempts >= maxIntentos {
		hasta := ahora.Add(duracion)
		u.LockedUntil = &hasta
		u.FailedAttempts = 0
		return DecisionBloqueo{Bloqueado: true, DesbloqueoEn: &hasta}
	}
	return DecisionBloqueo{}
}

// RegistrarExito limpia contador y bloqueo tras una autenticación correcta.
func RegistrarExito(u *entity.Usuario) {
	u.FailedAttempts = 0
	u.LockedUntil = nil
}
