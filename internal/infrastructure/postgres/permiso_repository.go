package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jorsalda/SistPROF/internal/domain/entity"
	"github.com/jorsalda/SistPROF/internal/domain/repository"
)

var _ repository.PermisoRepository = (*PermisoRepo)(nil)

const permisoColumnas = `id, docente_id, colegio_id, fecha_inicio, fecha_fin, tipo, observacion, fecha_creacion`

// PermisoRepo implementación del puerto PermisoRepository sobre PostgreSQL.
type PermisoRepo struct {
	q Querier
}

// NewPermisoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPermisoRepository(q Querier) *PermisoRepo {
	return &PermisoRepo{q: q}
}

// Create persiste un permiso.
func (r *PermisoRepo) Create(p *entity.Permiso) error {
	query := `
		INSERT INTO permisos (id, docente_id, colegio_id, fecha_inicio, fecha_fin, tipo, observacion, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.DocenteID, p.ColegioID, p.FechaInicio, p.FechaFin, p.Tipo, p.Observacion, p.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("insert permiso: %w", err)
	}
	return nil
}

// GetByID obtiene un permiso por ID.
func (r *PermisoRepo) GetByID(id string) (*entity.Permiso, error) {
	query := `SELECT ` + permisoColumnas + ` FROM permisos WHERE id = $1`
	var p entity.Permiso
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.DocenteID, &p.ColegioID, &p.FechaInicio, &p.FechaFin, &p.Tipo, &p.Observacion, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permiso: %w", err)
	}
	return &p, nil
}

// ListByColegio lista permisos de un colegio, los más recientes primero.
func (r *PermisoRepo) ListByColegio(colegioID string, limit, offset int) ([]*entity.Permiso, error) {
	query := `SELECT ` + permisoColumnas + `
		FROM permisos WHERE colegio_id = $1 ORDER BY fecha_inicio DESC LIMIT $2 OFFSET $3`
	return r.listar(query, colegioID, limit, offset)
}

// ListByDocente lista permisos de un docente.
func (r *PermisoRepo) ListByDocente(docenteID string, limit, offset int) ([]*entity.Permiso, error) {
	query := `SELECT ` + permisoColumnas + `
		FROM permisos WHERE docente_id = $1 ORDER BY fecha_inicio DESC LIMIT $2 OFFSET $3`
	return r.listar(query, docenteID, limit, offset)
}

func (r *PermisoRepo) listar(query string, args ...any) ([]*entity.Permiso, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list permisos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Permiso
	for rows.Next() {
		var p entity.Permiso
		if err := rows.Scan(&p.ID, &p.DocenteID, &p.ColegioID, &p.FechaInicio, &p.FechaFin, &p.Tipo, &p.Observacion, &p.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan permiso: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un permiso por ID.
func (r *PermisoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM permisos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete permiso: %w", err)
	}
	return nil
}

// CountAll cuenta todos los permisos.
func (r *PermisoRepo) CountAll() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM permisos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count permisos: %w", err)
	}
	return n, nil
}
