// Package authz implementa la puerta de autorización: decide si una
// identidad autenticada puede ejecutar una acción sobre un colegio o
// sobre otra cuenta. Los handlers la invocan explícitamente al inicio
// de cada operación protegida y traducen el error a HTTP.
package authz

import (
	"github.com/jorsalda/SistPROF/internal/domain"
	"github.com/jorsalda/SistPROF/internal/domain/entity"
)

// Accion clase de operación que se quiere autorizar.
type Accion string

const (
	AccionLeer        Accion = "leer"
	AccionEscribir    Accion = "escribir"
	AccionAdministrar Accion = "administrar" // ciclo de vida de cuentas, solo admin
)

// Identidad resultado de una autenticación exitosa. El valor cero
// representa "no autenticado".
type Identidad struct {
	UsuarioID string
	ColegioID string
	Rol       string
}

// Autenticada indica si la identidad proviene de un login verificado.
func (i Identidad) Autenticada() bool {
	return i.UsuarioID != ""
}

// EsAdmin indica si la identidad tiene rol de superadministrador.
func (i Identidad) EsAdmin() bool {
	return i.Rol == entity.RolAdmin
}

// Autorizar decide si la identidad puede ejecutar la acción sobre el colegio
// destino. Reglas:
//   - admin: siempre permitido, cualquier colegio, cualquier acción.
//   - colegio: permitido solo sobre su propio colegio; las acciones
//     administrativas se niegan siempre.
//
// Cada negación devuelve un error distinguible para que el caller pueda
// responder con el mensaje/redirect adecuado.
func Autorizar(id Identidad, accion Accion, colegioID string) error {
	if !id.Autenticada() {
		return domain.ErrNoAutenticado
	}
	if id.EsAdmin() {
		return nil
	}
	if accion == AccionAdministrar {
		return domain.ErrRolInsuficiente
	}
	if colegioID != id.ColegioID {
		return domain.ErrColegioAjeno
	}
	return nil
}

// AutorizarSobreUsuario autoriza una acción administrativa cuyo destino es
// otra cuenta. Las cuentas admin están protegidas: ni siquiera otro admin
// puede aprobarlas, bloquearlas o modificar su prueba (protege al admin de
// bootstrap frente a bloqueos o degradaciones).
func AutorizarSobreUsuario(actor Identidad, objetivo *entity.Usuario) error {
	if err := Autorizar(actor, AccionAdministrar, ""); err != nil {
		return err
	}
	if objetivo == nil {
		return domain.ErrNotFound
	}
	if objetivo.EsAdmin() {
		return domain.ErrAdminProtegido
	}
	return nil
}
