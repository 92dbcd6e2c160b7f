package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jorsalda/SistPROF/internal/application/admin"
	"github.com/jorsalda/SistPROF/internal/application/auth"
	"github.com/jorsalda/SistPROF/internal/domain/repository"
)

// Asegura que TxRunner implementa los puertos de auth y admin.
var _ auth.TxRunner = (*TxRunner)(nil)
var _ admin.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL, con
// repositorios atados a la tx. Es la vía por la que login, registro y las
// mutaciones administrativas serializan el acceso por fila (FOR UPDATE).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit si fn devuelve nil, Rollback en caso contrario.
func (r *TxRunner) Run(ctx context.Context, fn func(
	usuarios repository.UsuarioRepository,
	colegios repository.ColegioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUsuarioRepository(tx), NewColegioRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
