package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jorsalda/SistPROF/internal/domain"
	"github.com/jorsalda/SistPROF/internal/domain/entity"
	"github.com/jorsalda/SistPROF/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioColumnas = `id, email, password_hash, colegio_id, rol, estatus,
	fecha_registro, fecha_expiracion, fecha_aprobacion, dias_prueba,
	failed_attempts, locked_until`

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario. Mapea las violaciones de unicidad:
// email duplicado y doble admin de arranque (este último como conflicto
// reintentable por el caller).
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, email, password_hash, colegio_id, rol, estatus,
			fecha_registro, fecha_expiracion, fecha_aprobacion, dias_prueba,
			failed_attempts, locked_until)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.PasswordHash, u.ColegioID, u.Rol, u.Estatus,
		u.FechaRegistro, u.FechaExpiracion, u.FechaAprobacion, u.DiasPrueba,
		u.FailedAttempts, u.LockedUntil,
	)
	if err != nil {
		if isUniqueViolation(err, "usuarios_email_unico") {
			return domain.ErrEmailRegistrado
		}
		if isUniqueViolation(err, "usuarios_admin_unico") {
			return domain.ErrConflicto
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.uno(`SELECT `+usuarioColumnas+` FROM usuarios WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.uno(`SELECT `+usuarioColumnas+` FROM usuarios WHERE email = $1`, email)
}

// GetByIDForUpdate obtiene y bloquea la fila (SELECT FOR UPDATE). Solo tiene
// sentido dentro de una transacción.
func (r *UsuarioRepo) GetByIDForUpdate(id string) (*entity.Usuario, error) {
	return r.uno(`SELECT `+usuarioColumnas+` FROM usuarios WHERE id = $1 FOR UPDATE`, id)
}

// GetByEmailForUpdate obtiene y bloquea la fila por email. Serializa los
// incrementos del contador de intentos bajo logins concurrentes.
func (r *UsuarioRepo) GetByEmailForUpdate(email string) (*entity.Usuario, error) {
	return r.uno(`SELECT `+usuarioColumnas+` FROM usuarios WHERE email = $1 FOR UPDATE`, email)
}

func (r *UsuarioRepo) uno(query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.ColegioID, &u.Rol, &u.Estatus,
		&u.FechaRegistro, &u.FechaExpiracion, &u.FechaAprobacion, &u.DiasPrueba,
		&u.FailedAttempts, &u.LockedUntil,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Update actualiza todos los campos mutables de un usuario.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET email = $2, password_hash = $3, colegio_id = $4,
			rol = $5, estatus = $6, fecha_expiracion = $7, fecha_aprobacion = $8,
			dias_prueba = $9, failed_attempts = $10, locked_until = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.PasswordHash, u.ColegioID, u.Rol, u.Estatus,
		u.FechaExpiracion, u.FechaAprobacion, u.DiasPrueba,
		u.FailedAttempts, u.LockedUntil,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// List devuelve usuarios con paginación, los más recientes primero.
func (r *UsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumnas + `
		FROM usuarios ORDER BY fecha_registro DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.ColegioID, &u.Rol, &u.Estatus,
			&u.FechaRegistro, &u.FechaExpiracion, &u.FechaAprobacion, &u.DiasPrueba,
			&u.FailedAttempts, &u.LockedUntil,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// CountAll cuenta todos los usuarios del sistema.
func (r *UsuarioRepo) CountAll() (int, error) {
	return r.contar(`SELECT count(*) FROM usuarios`)
}

// CountPorEstatus cuenta usuarios por estatus.
func (r *UsuarioRepo) CountPorEstatus(estatus string) (int, error) {
	return r.contar(`SELECT count(*) FROM usuarios WHERE estatus = $1`, estatus)
}

// CountPorRol cuenta usuarios por rol.
func (r *UsuarioRepo) CountPorRol(rol string) (int, error) {
	return r.contar(`SELECT count(*) FROM usuarios WHERE rol = $1`, rol)
}

// CountRegistradosDesde cuenta usuarios registrados desde la fecha dada.
func (r *UsuarioRepo) CountRegistradosDesde(desde time.Time) (int, error) {
	return r.contar(`SELECT count(*) FROM usuarios WHERE fecha_registro >= $1`, desde)
}

func (r *UsuarioRepo) contar(query string, args ...any) (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count usuarios: %w", err)
	}
	return n, nil
}

// ProximosAVencer cuentas en prueba cuya expiración cae en [ahora, hasta].
func (r *UsuarioRepo) ProximosAVencer(ahora, hasta time.Time) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumnas + `
		FROM usuarios
		WHERE fecha_expiracion IS NOT NULL AND fecha_expiracion BETWEEN $1 AND $2
		ORDER BY fecha_expiracion ASC`
	rows, err := r.q.Query(context.Background(), query, ahora, hasta)
	if err != nil {
		return nil, fmt.Errorf("próximos a vencer: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.ColegioID, &u.Rol, &u.Estatus,
			&u.FechaRegistro, &u.FechaExpiracion, &u.FechaAprobacion, &u.DiasPrueba,
			&u.FailedAttempts, &u.LockedUntil,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
