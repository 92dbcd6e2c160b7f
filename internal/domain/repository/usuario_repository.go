package repository

import (
	"time"

	"github.com/jorsalda/SistPROF/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// La implementación vive en infrastructure. Save/Update debe ser atómico
// por fila; las variantes ForUpdate solo tienen sentido dentro de una
// transacción (ver TxRunner).
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	// GetByEmailForUpdate y GetByIDForUpdate bloquean la fila (SELECT FOR UPDATE)
	// para serializar incrementos de intentos fallidos y cambios de estatus.
	GetByEmailForUpdate(email string) (*entity.Usuario, error)
	GetByIDForUpdate(id string) (*entity.Usuario, error)
	Update(u *entity.Usuario) error
	List(limit, offset int) ([]*entity.Usuario, error)
	CountAll() (int, error)
	CountPorEstatus(estatus string) (int, error)
	CountPorRol(rol string) (int, error)
	CountRegistradosDesde(desde time.Time) (int, error)
	// ProximosAVencer cuentas en prueba cuya expiración cae en [ahora, hasta].
	ProximosAVencer(ahora, hasta time.Time) ([]*entity.Usuario, error)
}
