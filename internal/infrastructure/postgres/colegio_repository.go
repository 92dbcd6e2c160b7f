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

var _ repository.ColegioRepository = (*ColegioRepo)(nil)

// ColegioRepo implementación del puerto ColegioRepository sobre PostgreSQL.
type ColegioRepo struct {
	q Querier
}

// NewColegioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewColegioRepository(q Querier) *ColegioRepo {
	return &ColegioRepo{q: q}
}

// Create persiste un colegio. Un nombre duplicado (carrera con otro
// registro) se devuelve como conflicto reintentable.
func (r *ColegioRepo) Create(colegio *entity.Colegio) error {
	query := `INSERT INTO colegios (id, nombre, fecha_creacion) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, colegio.ID, colegio.Nombre, colegio.FechaCreacion)
	if err != nil {
		if isUniqueViolation(err, "colegios_nombre_unico") {
			return domain.ErrConflicto
		}
		return fmt.Errorf("insert colegio: %w", err)
	}
	return nil
}

// GetByID obtiene un colegio por ID.
func (r *ColegioRepo) GetByID(id string) (*entity.Colegio, error) {
	return r.uno(`SELECT id, nombre, fecha_creacion FROM colegios WHERE id = $1`, id)
}

// GetByNombre obtiene un colegio por nombre exacto.
func (r *ColegioRepo) GetByNombre(nombre string) (*entity.Colegio, error) {
	return r.uno(`SELECT id, nombre, fecha_creacion FROM colegios WHERE nombre = $1`, nombre)
}

func (r *ColegioRepo) uno(query string, arg any) (*entity.Colegio, error) {
	var c entity.Colegio
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&c.ID, &c.Nombre, &c.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get colegio: %w", err)
	}
	return &c, nil
}

// List devuelve colegios con paginación.
func (r *ColegioRepo) List(limit, offset int) ([]*entity.Colegio, error) {
	query := `SELECT id, nombre, fecha_creacion FROM colegios ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list colegios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Colegio
	for rows.Next() {
		var c entity.Colegio
		if err := rows.Scan(&c.ID, &c.Nombre, &c.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan colegio: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CountAll cuenta todos los colegios.
func (r *ColegioRepo) CountAll() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM colegios`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count colegios: %w", err)
	}
	return n, nil
}
