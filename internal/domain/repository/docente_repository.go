package repository

import "github.com/jorsalda/SistPROF/internal/domain/entity"

// DocenteRepository define el puerto de persistencia para Docente (DIP).
type DocenteRepository interface {
	Create(docente *entity.Docente) error
	GetByID(id string) (*entity.Docente, error)
	GetByColegioYNombre(colegioID, nombre string) (*entity.Docente, error)
	Update(docente *entity.Docente) error
	ListByColegio(colegioID string, limit, offset int) ([]*entity.Docente, error)
	// Delete elimina el docente; sus permisos caen en cascada (FK).
	Delete(id string) error
	CountAll() (int, error)
}
