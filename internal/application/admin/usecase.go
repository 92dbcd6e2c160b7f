// Package admin implementa las acciones administrativas sobre cuentas:
// aprobar, bloquear, activar, desbloquear y ajustar días de prueba, más el
// panel de estadísticas. Todas exigen rol admin vía la puerta de
// autorización y protegen a las cuentas admin como destino.
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jorsalda/SistPROF/internal/application/auth"
	"github.com/jorsalda/SistPROF/internal/application/authz"
	"github.com/jorsalda/SistPROF/internal/application/dto"
	"github.com/jorsalda/SistPROF/internal/domain"
	"github.com/jorsalda/SistPROF/internal/domain/entity"
	"github.com/jorsalda/SistPROF/internal/domain/repository"
)

// TxRunner transacción con el repositorio de usuarios atado a la tx.
// Las mutaciones de estatus cargan la fila con FOR UPDATE.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		usuarios repository.UsuarioRepository,
		colegios repository.ColegioRepository,
	) error) error
}

// UseCase acciones administrativas del ciclo de vida de cuentas.
type UseCase struct {
	tx       TxRunner
	usuarios repository.UsuarioRepository
	colegios repository.ColegioRepository
	docentes repository.DocenteRepository
	permisos repository.PermisoRepository
	reloj    func() time.Time
}

// NewUseCase construye el caso de uso administrativo.
func NewUseCase(
	tx TxRunner,
	usuarios repository.UsuarioRepository,
	colegios repository.ColegioRepository,
	docentes repository.DocenteRepository,
	permisos repository.PermisoRepository,
) *UseCase {
	return &UseCase{
		tx:       tx,
		usuarios: usuarios,
		colegios: colegios,
		docentes: docentes,
		permisos: permisos,
		reloj:    time.Now,
	}
}

// ConReloj fija la fuente de tiempo (tests).
func (uc *UseCase) ConReloj(reloj func() time.Time) *UseCase {
	uc.reloj = reloj
	return uc
}

// mutar carga el usuario destino con FOR UPDATE, autoriza al actor sobre él
// y aplica fn dentro de la misma transacción.
func (uc *UseCase) mutar(ctx context.Context, actor authz.Identidad, usuarioID string, fn func(u *entity.Usuario, ahora time.Time) error) (*dto.UsuarioResponse, error) {
	var out *dto.UsuarioResponse
	err := uc.tx.Run(ctx, func(usuarios repository.UsuarioRepository, _ repository.ColegioRepository) error {
		u, err := usuarios.GetByIDForUpdate(usuarioID)
		if err != nil {
			return err
		}
		if err := authz.AutorizarSobreUsuario(actor, u); err != nil {
			return err
		}
		ahora := uc.reloj()
		if err := fn(u, ahora); err != nil {
			return err
		}
		if err := usuarios.Update(u); err != nil {
			return err
		}
		out = auth.ToUsuarioResponse(u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Aprobar convierte una cuenta pendiente en permanente: estatus activo y
// sin fecha de expiración. Una cuenta bloqueada debe activarse primero.
func (uc *UseCase) Aprobar(ctx context.Context, actor authz.Identidad, usuarioID string) (*dto.UsuarioResponse, error) {
	out, err := uc.mutar(ctx, actor, usuarioID, func(u *entity.Usuario, ahora time.Time) error {
		if u.Estatus == entity.EstatusBloqueado {
			return domain.ErrConflicto
		}
		u.Estatus = entity.EstatusActivo
		u.FechaAprobacion = &ahora
		u.FechaExpiracion = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("usuario_id", usuarioID).Str("actor", actor.UsuarioID).Msg("usuario aprobado")
	return out, nil
}

// Bloquear desactiva la cuenta. La aprobación se revoca: al reactivarla,
// una prueba vencida sigue vencida hasta que se apruebe de nuevo.
func (uc *UseCase) Bloquear(ctx context.Context, actor authz.Identidad, usuarioID string) (*dto.UsuarioResponse, error) {
	out, err := uc.mutar(ctx, actor, usuarioID, func(u *entity.Usuario, _ time.Time) error {
		u.Estatus = entity.EstatusBloqueado
		u.FechaAprobacion = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("usuario_id", usuarioID).Str("actor", actor.UsuarioID).Msg("usuario bloqueado")
	return out, nil
}

// Activar reactiva una cuenta bloqueada. No restaura la aprobación ni
// limpia la expiración: eso solo lo hace Aprobar. Nunca vuelve a pendiente.
func (uc *UseCase) Activar(ctx context.Context, actor authz.Identidad, usuarioID string) (*dto.UsuarioResponse, error) {
	out, err := uc.mutar(ctx, actor, usuarioID, func(u *entity.Usuario, _ time.Time) error {
		if u.Estatus != entity.EstatusBloqueado {
			return domain.ErrConflicto
		}
		u.Estatus = entity.EstatusActivo
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("usuario_id", usuarioID).Str("actor", actor.UsuarioID).Msg("usuario activado")
	return out, nil
}

// Desbloquear limpia el bloqueo temporal por intentos fallidos antes de que
// venza por sí solo.
func (uc *UseCase) Desbloquear(ctx context.Context, actor authz.Identidad, usuarioID string) (*dto.UsuarioResponse, error) {
	out, err := uc.mutar(ctx, actor, usuarioID, func(u *entity.Usuario, _ time.Time) error {
		u.LockedUntil = nil
		u.FailedAttempts = 0
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("usuario_id", usuarioID).Str("actor", actor.UsuarioID).Msg("bloqueo temporal retirado")
	return out, nil
}

// ModificarDiasPrueba recalcula la expiración como fecha de registro + días.
func (uc *UseCase) ModificarDiasPrueba(ctx context.Context, actor authz.Identidad, usuarioID string, dias int) (*dto.UsuarioResponse, error) {
	if dias < 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.mutar(ctx, actor, usuarioID, func(u *entity.Usuario, _ time.Time) error {
		u.DiasPrueba = dias
		exp := u.FechaRegistro.AddDate(0, 0, dias)
		u.FechaExpiracion = &exp
		return nil
	})
}

// ListarUsuarios lista todas las cuentas del sistema (solo admin).
func (uc *UseCase) ListarUsuarios(actor authz.Identidad, limit, offset int) (*dto.UsuarioListResponse, error) {
	if err := authz.Autorizar(actor, authz.AccionAdministrar, ""); err != nil {
		return nil, err
	}
	usuarios, err := uc.usuarios.List(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	out := &dto.UsuarioListResponse{Items: make([]dto.UsuarioResponse, 0, len(usuarios)), Limit: limit, Offset: offset}
	for _, u := range usuarios {
		out.Items = append(out.Items, *auth.ToUsuarioResponse(u))
	}
	return out, nil
}

// ObtenerUsuario detalle de una cuenta (solo admin).
func (uc *UseCase) ObtenerUsuario(actor authz.Identidad, usuarioID string) (*dto.UsuarioResponse, error) {
	if err := authz.Autorizar(actor, authz.AccionAdministrar, ""); err != nil {
		return nil, err
	}
	u, err := uc.usuarios.GetByID(usuarioID)
	if err != nil {
		return nil, fmt.Errorf("obtener usuario: %w", err)
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return auth.ToUsuarioResponse(u), nil
}

// Estadisticas contadores del panel de administración.
func (uc *UseCase) Estadisticas(actor authz.Identidad) (*dto.EstadisticasResponse, error) {
	if err := authz.Autorizar(actor, authz.AccionAdministrar, ""); err != nil {
		return nil, err
	}
	ahora := uc.reloj()

	out := &dto.EstadisticasResponse{}
	var err error
	if out.TotalUsuarios, err = uc.usuarios.CountAll(); err != nil {
		return nil, fmt.Errorf("estadísticas: %w", err)
	}
	if out.Superadmins, err = uc.usuarios.CountPorRol(entity.RolAdmin); err != nil {
		return nil, fmt.Errorf("estadísticas: %w", err)
	}
	if out.UsuariosActivos, err = uc.usuarios.CountPorEstatus(entity.EstatusActivo); err != nil {
		return nil, fmt.Errorf("estadísticas: %w", err)
	}
	if out.UsuariosPendientes, err = uc.usuarios.CountPorEstatus(entity.EstatusPendiente); err != nil {
		return nil, fmt.Errorf("estadísticas: %w", err)
	}
	if out.UsuariosBloqueados, err = uc.usuarios.CountPorEstatus(entity.EstatusBloqueado); err != nil {
		return nil, fmt.Errorf("estadísticas: %w", err)
	}
	if out.TotalColegios, err = uc.colegios.CountAll(); err != nil {
		return nil, fmt.Errorf("estadísticas: %w", err)
	}
	if out.TotalDocentes, err = uc.docentes.CountAll(); err != nil {
		return nil, fmt.Errorf("estadísticas: %w", err)
	}
	if out.TotalPermisos, err = uc.permisos.CountAll(); err != nil {
		return nil, fmt.Errorf("estadísticas: %w", err)
	}
	if out.NuevosUltimos7Dias, err = uc.usuarios.CountRegistradosDesde(ahora.AddDate(0, 0, -7)); err != nil {
		return nil, fmt.Errorf("estadísticas: %w", err)
	}
	return out, nil
}

// ProximosAVencer cuentas en prueba que expiran en los próximos 3 días.
func (uc *UseCase) ProximosAVencer(actor authz.Identidad) ([]dto.ProximoAVencer, error) {
	if err := authz.Autorizar(actor, authz.AccionAdministrar, ""); err != nil {
		return nil, err
	}
	ahora := uc.reloj()
	usuarios, err := uc.usuarios.ProximosAVencer(ahora, ahora.AddDate(0, 0, 3))
	if err != nil {
		return nil, fmt.Errorf("próximos a vencer: %w", err)
	}
	out := make([]dto.ProximoAVencer, 0, len(usuarios))
	for _, u := range usuarios {
		dias := int(u.FechaExpiracion.Sub(ahora).Hours() / 24)
		out = append(out, dto.ProximoAVencer{Usuario: *auth.ToUsuarioResponse(u), DiasRestantes: dias})
	}
	return out, nil
}
