package repository

import "github.com/jorsalda/SistPROF/internal/domain/entity"

// PermisoRepository define el puerto de persistencia para Permiso (DIP).
type PermisoRepository interface {
	Create(permiso *entity.Permiso) error
	GetByID(id string) (*entity.Permiso, error)
	ListByColegio(colegioID string, limit, offset int) ([]*entity.Permiso, error)
	ListByDocente(docenteID string, limit, offset int) ([]*entity.Permiso, error)
	Delete(id string) error
	CountAll() (int, error)
}
