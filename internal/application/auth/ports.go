package auth

import (
	"context"

	"github.com/jorsalda/SistPROF/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Login y registro lo necesitan para
// serializar las mutaciones por fila de usuario (SELECT FOR UPDATE) y
// para que el arranque "primer usuario = admin" sea atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		usuarios repository.UsuarioRepository,
		colegios repository.ColegioRepository,
	) error) error
}
