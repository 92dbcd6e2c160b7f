package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jorsalda/SistPROF/internal/application/authz"
	"github.com/jorsalda/SistPROF/internal/domain"
	"github.com/jorsalda/SistPROF/internal/domain/entity"
)

var (
	admin   = authz.Identidad{UsuarioID: "u-admin", ColegioID: "c-1", Rol: entity.RolAdmin}
	colegio = authz.Identidad{UsuarioID: "u-col", ColegioID: "c-1", Rol: entity.RolColegio}
	anonima = authz.Identidad{}
)

func TestAutorizar(t *testing.T) {
	casos := []struct {
		nombre    string
		id        authz.Identidad
		accion    authz.Accion
		colegioID string
		esperado  error
	}{
		{"anónimo siempre se niega", anonima, authz.AccionLeer, "c-1", domain.ErrNoAutenticado},
		{"admin lee cualquier colegio", admin, authz.AccionLeer, "c-9", nil},
		{"admin escribe cualquier colegio", admin, authz.AccionEscribir, "c-9", nil},
		{"admin administra", admin, authz.AccionAdministrar, "", nil},
		{"colegio lee lo suyo", colegio, authz.AccionLeer, "c-1", nil},
		{"colegio escribe lo suyo", colegio, authz.AccionEscribir, "c-1", nil},
		{"colegio no lee lo ajeno", colegio, authz.AccionLeer, "c-2", domain.ErrColegioAjeno},
		{"colegio no escribe lo ajeno", colegio, authz.AccionEscribir, "c-2", domain.ErrColegioAjeno},
		{"colegio no administra", colegio, authz.AccionAdministrar, "c-1", domain.ErrRolInsuficiente},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			err := authz.Autorizar(c.id, c.accion, c.colegioID)
			if c.esperado == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, c.esperado)
			}
		})
	}
}

func TestAutorizarSobreUsuario(t *testing.T) {
	objetivo := &entity.Usuario{ID: "u-2", Rol: entity.RolColegio}
	otroAdmin := &entity.Usuario{ID: "u-3", Rol: entity.RolAdmin}

	assert.NoError(t, authz.AutorizarSobreUsuario(admin, objetivo))

	// Las cuentas admin están protegidas incluso frente a otro admin.
	assert.ErrorIs(t, authz.AutorizarSobreUsuario(admin, otroAdmin), domain.ErrAdminProtegido)

	assert.ErrorIs(t, authz.AutorizarSobreUsuario(colegio, objetivo), domain.ErrRolInsuficiente)
	assert.ErrorIs(t, authz.AutorizarSobreUsuario(anonima, objetivo), domain.ErrNoAutenticado)
	assert.ErrorIs(t, authz.AutorizarSobreUsuario(admin, nil), domain.ErrNotFound)
}
