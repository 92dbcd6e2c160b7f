package permiso

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jorsalda/SistPROF/internal/application/authz"
	"github.com/jorsalda/SistPROF/internal/application/dto"
	"github.com/jorsalda/SistPROF/internal/domain"
	"github.com/jorsalda/SistPROF/internal/domain/entity"
	"github.com/jorsalda/SistPROF/internal/domain/repository"
)

const formatoFecha = "2006-01-02"

// UseCase CRUD de permisos (ausencias aprobadas), acotado al colegio.
type UseCase struct {
	repo     repository.PermisoRepository
	docentes repository.DocenteRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.PermisoRepository, docentes repository.DocenteRepository) *UseCase {
	return &UseCase{repo: repo, docentes: docentes}
}

// Crear registra un permiso para un docente del colegio. Valida el rango de
// fechas y que el docente pertenezca al mismo colegio que la identidad.
func (uc *UseCase) Crear(id authz.Identidad, in dto.CreatePermisoRequest) (*dto.PermisoResponse, error) {
	inicio, err := time.Parse(formatoFecha, in.FechaInicio)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	fin, err := time.Parse(formatoFecha, in.FechaFin)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if fin.Before(inicio) {
		return nil, domain.ErrRangoFechas
	}

	d, err := uc.docentes.GetByID(in.DocenteID)
	if err != nil {
		return nil, fmt.Errorf("obtener docente: %w", err)
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.Autorizar(id, authz.AccionEscribir, d.ColegioID); err != nil {
		return nil, err
	}

	p := &entity.Permiso{
		ID:            uuid.New().String(),
		DocenteID:     d.ID,
		ColegioID:     d.ColegioID,
		FechaInicio:   inicio,
		FechaFin:      fin,
		Tipo:          in.Tipo,
		Observacion:   in.Observacion,
		FechaCreacion: time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPermisoResponse(p), nil
}

// Listar permisos del colegio de la identidad (o del colegio indicado, si admin).
func (uc *UseCase) Listar(id authz.Identidad, colegioID string, limit, offset int) (*dto.PermisoListResponse, error) {
	destino := id.ColegioID
	if colegioID != "" && id.EsAdmin() {
		destino = colegioID
	}
	if err := authz.Autorizar(id, authz.AccionLeer, destino); err != nil {
		return nil, err
	}
	permisos, err := uc.repo.ListByColegio(destino, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar permisos: %w", err)
	}
	out := &dto.PermisoListResponse{Items: make([]dto.PermisoResponse, 0, len(permisos)), Limit: limit, Offset: offset}
	for _, p := range permisos {
		out.Items = append(out.Items, *toPermisoResponse(p))
	}
	return out, nil
}

// Obtener un permiso por id, verificando pertenencia al colegio.
func (uc *UseCase) Obtener(id authz.Identidad, permisoID string) (*dto.PermisoResponse, error) {
	p, err := uc.repo.GetByID(permisoID)
	if err != nil {
		return nil, fmt.Errorf("obtener permiso: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.Autorizar(id, authz.AccionLeer, p.ColegioID); err != nil {
		return nil, err
	}
	return toPermisoResponse(p), nil
}

// Eliminar borra un permiso del colegio.
func (uc *UseCase) Eliminar(id authz.Identidad, permisoID string) error {
	p, err := uc.repo.GetByID(permisoID)
	if err != nil {
		return fmt.Errorf("obtener permiso: %w", err)
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if err := authz.Autorizar(id, authz.AccionEscribir, p.ColegioID); err != nil {
		return err
	}
	return uc.repo.Delete(permisoID)
}

func toPermisoResponse(p *entity.Permiso) *dto.PermisoResponse {
	return &dto.PermisoResponse{
		ID:            p.ID,
		DocenteID:     p.DocenteID,
		ColegioID:     p.ColegioID,
		FechaInicio:   p.FechaInicio.Format(formatoFecha),
		FechaFin:      p.FechaFin.Format(formatoFecha),
		Tipo:          p.Tipo,
		Observacion:   p.Observacion,
		FechaCreacion: p.FechaCreacion,
	}
}
