package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jorsalda/SistPROF/internal/domain"
	"github.com/jorsalda/SistPROF/internal/domain/entity"
	"github.com/jorsalda/SistPROF/internal/domain/repository"
)

var _ repository.DocenteRepository = (*DocenteRepo)(nil)

const docenteColumnas = `id, colegio_id, nombre, documento, telefono, email, activo, fecha_creacion`

// DocenteRepo implementación del puerto DocenteRepository sobre PostgreSQL.
type DocenteRepo struct {
	q Querier
}

// NewDocenteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocenteRepository(q Querier) *DocenteRepo {
	return &DocenteRepo{q: q}
}

// Create persiste un docente.
func (r *DocenteRepo) Create(d *entity.Docente) error {
	query := `
		INSERT INTO docentes (id, colegio_id, nombre, documento, telefono, email, activo, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.ColegioID, d.Nombre, d.Documento, d.Telefono, d.Email, d.Activo, d.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err, "docentes_nombre_por_colegio") {
			return domain.ErrDocenteDuplicado
		}
		return fmt.Errorf("insert docente: %w", err)
	}
	return nil
}

// GetByID obtiene un docente por ID.
func (r *DocenteRepo) GetByID(id string) (*entity.Docente, error) {
	return r.uno(`SELECT `+docenteColumnas+` FROM docentes WHERE id = $1`, id)
}

// GetByColegioYNombre obtiene un docente por nombre dentro de un colegio.
func (r *DocenteRepo) GetByColegioYNombre(colegioID, nombre string) (*entity.Docente, error) {
	query := `SELECT ` + docenteColumnas + ` FROM docentes WHERE colegio_id = $1 AND nombre = $2`
	var d entity.Docente
	err := r.q.QueryRow(context.Background(), query, colegioID, nombre).Scan(
		&d.ID, &d.ColegioID, &d.Nombre, &d.Documento, &d.Telefono, &d.Email, &d.Activo, &d.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get docente por nombre: %w", err)
	}
	return &d, nil
}

func (r *DocenteRepo) uno(query string, arg any) (*entity.Docente, error) {
	var d entity.Docente
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&d.ID, &d.ColegioID, &d.Nombre, &d.Documento, &d.Telefono, &d.Email, &d.Activo, &d.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get docente: %w", err)
	}
	return &d, nil
}

// Update actualiza un docente.
func (r *DocenteRepo) Update(d *entity.Docente) error {
	query := `
		UPDATE docentes SET nombre = $2, documento = $3, telefono = $4, email = $5, activo = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Nombre, d.Documento, d.Telefono, d.Email, d.Activo,
	)
	if err != nil {
		if isUniqueViolation(err, "docentes_nombre_por_colegio") {
			return domain.ErrDocenteDuplicado
		}
		return fmt.Errorf("update docente: %w", err)
	}
	return nil
}

// ListByColegio lista docentes de un colegio con paginación.
func (r *DocenteRepo) ListByColegio(colegioID string, limit, offset int) ([]*entity.Docente, error) {
	query := `SELECT ` + docenteColumnas + `
		FROM docentes WHERE colegio_id = $1 ORDER BY nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, colegioID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list docentes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Docente
	for rows.Next() {
		var d entity.Docente
		if err := rows.Scan(&d.ID, &d.ColegioID, &d.Nombre, &d.Documento, &d.Telefono, &d.Email, &d.Activo, &d.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan docente: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina un docente; los permisos asociados caen en cascada (FK).
func (r *DocenteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM docentes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete docente: %w", err)
	}
	return nil
}

// CountAll cuenta todos los docentes.
func (r *DocenteRepo) CountAll() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM docentes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count docentes: %w", err)
	}
	return n, nil
}
