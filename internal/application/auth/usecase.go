package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jorsalda/SistPROF/internal/application/dto"
	"github.com/jorsalda/SistPROF/internal/domain"
	"github.com/jorsalda/SistPROF/internal/domain/entity"
	"github.com/jorsalda/SistPROF/internal/domain/repository"
	"github.com/jorsalda/SistPROF/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Config política de seguridad del login y del registro.
type Config struct {
	MaxIntentos int           // intentos fallidos consecutivos antes de bloquear
	Bloqueo     time.Duration // duración del bloqueo temporal
	DiasPrueba  int           // días de prueba para cuentas nuevas
}

// Valores por defecto de la política.
const (
	DefaultMaxIntentos = 5
	DefaultBloqueo     = 2 * time.Minute
	DefaultDiasPrueba  = 15
)

// UseCase casos de uso de autenticación: login con bloqueo por intentos,
// registro con arranque "primer usuario = admin" y carga de identidad.
type UseCase struct {
	tx       TxRunner
	usuarios repository.UsuarioRepository
	jwtCfg   JWTConfig
	cfg      Config
	reloj    func() time.Time
}

// NewUseCase construye el caso de uso. Los campos en cero de cfg toman los
// valores por defecto.
func NewUseCase(tx TxRunner, usuarios repository.UsuarioRepository, jwtCfg JWTConfig, cfg Config) *UseCase {
	if cfg.MaxIntentos <= 0 {
		cfg.MaxIntentos = DefaultMaxIntentos
	}
	if cfg.Bloqueo <= 0 {
		cfg.Bloqueo = DefaultBloqueo
	}
	if cfg.DiasPrueba <= 0 {
		cfg.DiasPrueba = DefaultDiasPrueba
	}
	return &UseCase{tx: tx, usuarios: usuarios, jwtCfg: jwtCfg, cfg: cfg, reloj: time.Now}
}

// ConReloj fija la fuente de tiempo. La expiración de prueba y el bloqueo se
// evalúan de forma perezosa contra este reloj, nunca con un barrido en fondo.
func (uc *UseCase) ConReloj(reloj func() time.Time) *UseCase {
	uc.reloj = reloj
	return uc
}

// Login verifica email/password aplicando, en orden: existencia (mensaje
// genérico), bloqueo temporal vigente, verificación bcrypt con contador de
// fallos, estatus de la cuenta y expiración de prueba. Todo ocurre con la
// fila del usuario bloqueada (FOR UPDATE) para que dos logins fallidos
// concurrentes no pierdan incrementos del contador.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var usuario *entity.Usuario
	var resultado error

	err := uc.tx.Run(ctx, func(usuarios repository.UsuarioRepository, _ repository.ColegioRepository) error {
		ahora := uc.reloj()

		u, err := usuarios.GetByEmailForUpdate(in.Email)
		if err != nil {
			return err
		}
		if u == nil {
			// Mismo mensaje que password incorrecto: no revelar si el email existe.
			resultado = domain.ErrCredencialesInvalidas
			return nil
		}
		if u.BloqueadoTemporalmente(ahora) {
			resultado = &domain.CuentaBloqueadaError{Restante: u.LockedUntil.Sub(ahora)}
			return nil
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
			// Hash malformado o password incorrecto: ambos cierran con el
			// mismo resultado genérico (fail closed).
			dec := RegistrarFallo(u, ahora, uc.cfg.MaxIntentos, uc.cfg.Bloqueo)
			if uErr := usuarios.Update(u); uErr != nil {
				return uErr
			}
			if dec.Bloqueado {
				log.Warn().
					Str("usuario_id", u.ID).
					Time("desbloqueo_en", *dec.DesbloqueoEn).
					Msg("cuenta bloqueada por intentos fallidos")
			}
			resultado = domain.ErrCredencialesInvalidas
			return nil
		}
		if u.Estatus == entity.EstatusBloqueado {
			resultado = domain.ErrCuentaInactiva
			return nil
		}
		if u.Expirado(ahora) {
			resultado = domain.ErrCuentaExpirada
			return nil
		}

		RegistrarExito(u)
		if err := usuarios.Update(u); err != nil {
			return err
		}
		usuario = u
		return nil
	})
	// Los resultados de negocio se devuelven con commit (el contador de
	// fallos debe persistir); solo los fallos de infraestructura revierten.
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resultado != nil {
		return nil, resultado
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.ColegioID, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{Token: token, Usuario: *ToUsuarioResponse(usuario)}, nil
}

// Register crea una cuenta nueva. El colegio se resuelve por nombre y se
// crea si no existe. El primer usuario del sistema queda como admin (activo,
// sin expiración); los demás entran en prueba como rol colegio. Las carreras
// de nombre duplicado y de doble bootstrap las resuelven los índices únicos:
// ante un conflicto se reintenta la transacción completa una vez.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}

	for intento := 0; ; intento++ {
		u, err := uc.registrarTx(ctx, in, string(hash))
		if err == nil {
			return ToUsuarioResponse(u), nil
		}
		if errors.Is(err, domain.ErrConflicto) && intento == 0 {
			continue
		}
		return nil, err
	}
}

func (uc *UseCase) registrarTx(ctx context.Context, in dto.RegisterRequest, hash string) (*entity.Usuario, error) {
	var usuario *entity.Usuario
	err := uc.tx.Run(ctx, func(usuarios repository.UsuarioRepository, colegios repository.ColegioRepository) error {
		ahora := uc.reloj()

		existente, err := usuarios.GetByEmail(in.Email)
		if err != nil {
			return err
		}
		if existente != nil {
			return domain.ErrEmailRegistrado
		}

		colegio, err := colegios.GetByNombre(in.ColegioNombre)
		if err != nil {
			return err
		}
		if colegio == nil {
			colegio = &entity.Colegio{
				ID:            uuid.New().String(),
				Nombre:        in.ColegioNombre,
				FechaCreacion: ahora,
			}
			if err := colegios.Create(colegio); err != nil {
				return err
			}
		}

		total, err := usuarios.CountAll()
		if err != nil {
			return err
		}

		u := &entity.Usuario{
			ID:            uuid.New().String(),
			Email:         in.Email,
			PasswordHash:  hash,
			ColegioID:     colegio.ID,
			Rol:           entity.RolColegio,
			Estatus:       entity.EstatusPendiente,
			FechaRegistro: ahora,
			DiasPrueba:    uc.cfg.DiasPrueba,
		}
		exp := ahora.AddDate(0, 0, uc.cfg.DiasPrueba)
		u.FechaExpiracion = &exp

		if total == 0 {
			// Arranque: el primer usuario es el superadministrador, activo
			// y sin período de prueba. El índice parcial sobre rol garantiza
			// que solo un registro concurrente gana esta vía.
			u.Rol = entity.RolAdmin
			u.Estatus = entity.EstatusActivo
			u.FechaExpiracion = nil
			u.FechaAprobacion = &ahora
			u.DiasPrueba = 0
		}

		if err := usuarios.Create(u); err != nil {
			return err
		}
		usuario = u
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailRegistrado), errors.Is(err, domain.ErrConflicto):
			return nil, err
		default:
			return nil, fmt.Errorf("registrar usuario: %w", err)
		}
	}
	log.Info().Str("usuario_id", usuario.ID).Str("rol", usuario.Rol).Msg("usuario registrado")
	return usuario, nil
}

// CargarUsuario resuelve una identidad almacenada (el id del token) a la
// cuenta actual. Devuelve nil si ya no existe.
func (uc *UseCase) CargarUsuario(id string) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("cargar usuario: %w", err)
	}
	if u == nil {
		return nil, nil
	}
	return ToUsuarioResponse(u), nil
}

// ToUsuarioResponse proyecta la entidad al DTO de salida (sin hash).
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:              u.ID,
		Email:           u.Email,
		ColegioID:       u.ColegioID,
		Rol:             u.Rol,
		Estatus:         u.Estatus,
		FechaRegistro:   u.FechaRegistro,
		FechaExpiracion: u.FechaExpiracion,
		FechaAprobacion: u.FechaAprobacion,
		DiasPrueba:      u.DiasPrueba,
	}
}
