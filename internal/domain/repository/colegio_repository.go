package repository

import "github.com/jorsalda/SistPROF/internal/domain/entity"

// ColegioRepository define el puerto de persistencia para Colegio (DIP).
type ColegioRepository interface {
	Create(colegio *entity.Colegio) error
	GetByID(id string) (*entity.Colegio, error)
	GetByNombre(nombre string) (*entity.Colegio, error)
	List(limit, offset int) ([]*entity.Colegio, error)
	CountAll() (int, error)
}
