package docente

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

// UseCase CRUD de docentes, acotado al colegio de la identidad. Un admin
// puede operar sobre cualquier colegio indicándolo explícitamente.
type UseCase struct {
	repo repository.DocenteRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.DocenteRepository) *UseCase {
	return &UseCase{repo: repo}
}

// colegioDestino resuelve el colegio sobre el que opera la identidad:
// el propio salvo que un admin indique otro.
func colegioDestino(id authz.Identidad, solicitado string) string {
	if solicitado != "" && id.EsAdmin() {
		return solicitado
	}
	return id.ColegioID
}

// Crear registra un docente en el colegio. Rechaza nombres duplicados
// dentro del mismo colegio.
func (uc *UseCase) Crear(id authz.Identidad, colegioID string, in dto.CreateDocenteRequest) (*dto.DocenteResponse, error) {
	destino := colegioDestino(id, colegioID)
	if err := authz.Autorizar(id, authz.AccionEscribir, destino); err != nil {
		return nil, err
	}
	existente, err := uc.repo.GetByColegioYNombre(destino, in.Nombre)
	if err != nil {
		return nil, fmt.Errorf("verificar docente: %w", err)
	}
	if existente != nil {
		return nil, domain.ErrDocenteDuplicado
	}
	d := &entity.Docente{
		ID:            uuid.New().String(),
		ColegioID:     destino,
		Nombre:        in.Nombre,
		Documento:     in.Documento,
		Telefono:      in.Telefono,
		Email:         in.Email,
		Activo:        true,
		FechaCreacion: time.Now(),
	}
	if err := uc.repo.Create(d); err != nil {
		return nil, err
	}
	return toDocenteResponse(d), nil
}

// Listar docentes del colegio, paginado.
func (uc *UseCase) Listar(id authz.Identidad, colegioID string, limit, offset int) (*dto.DocenteListResponse, error) {
	destino := colegioDestino(id, colegioID)
	if err := authz.Autorizar(id, authz.AccionLeer, destino); err != nil {
		return nil, err
	}
	docentes, err := uc.repo.ListByColegio(destino, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar docentes: %w", err)
	}
	out := &dto.DocenteListResponse{Items: make([]dto.DocenteResponse, 0, len(docentes)), Limit: limit, Offset: offset}
	for _, d := range docentes {
		out.Items = append(out.Items, *toDocenteResponse(d))
	}
	return out, nil
}

// Obtener un docente por id, verificando pertenencia al colegio.
func (uc *UseCase) Obtener(id authz.Identidad, docenteID string) (*dto.DocenteResponse, error) {
	d, err := uc.repo.GetByID(docenteID)
	if err != nil {
		return nil, fmt.Errorf("obtener docente: %w", err)
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.Autorizar(id, authz.AccionLeer, d.ColegioID); err != nil {
		return nil, err
	}
	return toDocenteResponse(d), nil
}

// Actualizar campos opcionales de un docente del colegio.
func (uc *UseCase) Actualizar(id authz.Identidad, docenteID string, in dto.UpdateDocenteRequest) (*dto.DocenteResponse, error) {
	d, err := uc.repo.GetByID(docenteID)
	if err != nil {
		return nil, fmt.Errorf("obtener docente: %w", err)
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.Autorizar(id, authz.AccionEscribir, d.ColegioID); err != nil {
		return nil, err
	}
	if in.Nombre != nil && *in.Nombre != d.Nombre {
		// El nombre nuevo no puede chocar con otro docente del colegio.
		existente, err := uc.repo.GetByColegioYNombre(d.ColegioID, *in.Nombre)
		if err != nil {
			return nil, fmt.Errorf("verificar docente: %w", err)
		}
		if existente != nil && existente.ID != d.ID {
			return nil, domain.ErrDocenteDuplicado
		}
		d.Nombre = *in.Nombre
	}
	if in.Documento != nil {
		d.Documento = *in.Documento
	}
	if in.Telefono != nil {
		d.Telefono = *in.Telefono
	}
	if in.Email != nil {
		d.Email = *in.Email
	}
	if in.Activo != nil {
		d.Activo = *in.Activo
	}
	if err := uc.repo.Update(d); err != nil {
		return nil, err
	}
	return toDocenteResponse(d), nil
}

// Eliminar borra el docente; sus permisos caen en cascada.
func (uc *UseCase) Eliminar(id authz.Identidad, docenteID string) error {
	d, err := uc.repo.GetByID(docenteID)
	if err != nil {
		return fmt.Errorf("obtener docente: %w", err)
	}
	if d == nil {
		return domain.ErrNotFound
	}
	if err := authz.Autorizar(id, authz.AccionEscribir, d.ColegioID); err != nil {
		return err
	}
	return uc.repo.Delete(docenteID)
}

func toDocenteResponse(d *entity.Docente) *dto.DocenteResponse {
	return &dto.DocenteResponse{
		ID:            d.ID,
		ColegioID:     d.ColegioID,
		Nombre:        d.Nombre,
		Documento:     d.Documento,
		Telefono:      d.Telefono,
		Email:         d.Email,
		Activo:        d.Activo,
		FechaCreacion: d.FechaCreacion,
	}
}
