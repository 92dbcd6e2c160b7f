package docente_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorsalda/SistPROF/internal/application/authz"
	"github.com/jorsalda/SistPROF/internal/application/docente"
	"github.com/jorsalda/SistPROF/internal/application/dto"
	"github.com/jorsalda/SistPROF/internal/domain"
	"github.com/jorsalda/SistPROF/internal/domain/entity"
)

// fakeDocentes repositorio en memoria con nombre único por colegio.
type fakeDocentes struct {
	porID map[string]*entity.Docente
}

func nuevoFakeDocentes(docentes ...*entity.Docente) *fakeDocentes {
	f := &fakeDocentes{porID: make(map[string]*entity.Docente)}
	for _, d := range docentes {
		c := *d
		f.porID[d.ID] = &c
	}
	return f
}

func (f *fakeDocentes) Create(d *entity.Docente) error {
	for _, e := range f.porID {
		if e.ColegioID == d.ColegioID && e.Nombre == d.Nombre {
			return domain.ErrDocenteDuplicado
		}
	}
	c := *d
	f.porID[d.ID] = &c
	return nil
}

func (f *fakeDocentes) GetByID(id string) (*entity.Docente, error) {
	d, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	c := *d
	return &c, nil
}

func (f *fakeDocentes) GetByColegioYNombre(colegioID, nombre string) (*entity.Docente, error) {
	for _, d := range f.porID {
		if d.ColegioID == colegioID && d.Nombre == nombre {
			c := *d
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeDocentes) Update(d *entity.Docente) error {
	if _, ok := f.porID[d.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, e := range f.porID {
		if e.ID != d.ID && e.ColegioID == d.ColegioID && e.Nombre == d.Nombre {
			return domain.ErrDocenteDuplicado
		}
	}
	c := *d
	f.porID[d.ID] = &c
	return nil
}

func (f *fakeDocentes) ListByColegio(colegioID string, limit, offset int) ([]*entity.Docente, error) {
	var out []*entity.Docente
	for _, d := range f.porID {
		if d.ColegioID == colegioID {
			c := *d
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeDocentes) Delete(id string) error {
	delete(f.porID, id)
	return nil
}

func (f *fakeDocentes) CountAll() (int, error) { return len(f.porID), nil }

var (
	idColegio1 = authz.Identidad{UsuarioID: "u-1", ColegioID: "c-1", Rol: entity.RolColegio}
	idColegio2 = authz.Identidad{UsuarioID: "u-2", ColegioID: "c-2", Rol: entity.RolColegio}
	idAdmin    = authz.Identidad{UsuarioID: "u-a", Rol: entity.RolAdmin}
)

func docenteDe(colegioID, nombre string) *entity.Docente {
	return &entity.Docente{
		ID:            "d-" + nombre,
		ColegioID:     colegioID,
		Nombre:        nombre,
		Activo:        true,
		FechaCreacion: time.Now(),
	}
}

func TestCrear(t *testing.T) {
	uc := docente.NewUseCase(nuevoFakeDocentes())

	out, err := uc.Crear(idColegio1, "", dto.CreateDocenteRequest{Nombre: "María Pérez"})
	require.NoError(t, err)
	assert.Equal(t, "c-1", out.ColegioID, "el docente queda en el colegio de la identidad")
	assert.True(t, out.Activo)
	assert.NotEmpty(t, out.ID)
}

// El mismo nombre no puede repetirse dentro de un colegio, pero sí en otro.
func TestCrear_NombreDuplicadoPorColegio(t *testing.T) {
	uc := docente.NewUseCase(nuevoFakeDocentes(docenteDe("c-1", "María Pérez")))

	_, err := uc.Crear(idColegio1, "", dto.CreateDocenteRequest{Nombre: "María Pérez"})
	assert.ErrorIs(t, err, domain.ErrDocenteDuplicado)

	_, err = uc.Crear(idColegio2, "", dto.CreateDocenteRequest{Nombre: "María Pérez"})
	assert.NoError(t, err, "otro colegio puede tener un docente con el mismo nombre")
}

// Un admin puede crear en cualquier colegio indicándolo; un rol colegio que
// pida otro colegio queda acotado al suyo y la autorización decide.
func TestCrear_ColegioDestino(t *testing.T) {
	repo := nuevoFakeDocentes()
	uc := docente.NewUseCase(repo)

	out, err := uc.Crear(idAdmin, "c-2", dto.CreateDocenteRequest{Nombre: "Juan Gómez"})
	require.NoError(t, err)
	assert.Equal(t, "c-2", out.ColegioID)

	// El parámetro de colegio se ignora para un rol colegio: opera en el suyo.
	out, err = uc.Crear(idColegio1, "c-2", dto.CreateDocenteRequest{Nombre: "Ana Ruiz"})
	require.NoError(t, err)
	assert.Equal(t, "c-1", out.ColegioID)
}

func TestObtener_ColegioAjeno(t *testing.T) {
	uc := docente.NewUseCase(nuevoFakeDocentes(docenteDe("c-1", "María Pérez")))

	_, err := uc.Obtener(idColegio2, "d-María Pérez")
	assert.ErrorIs(t, err, domain.ErrColegioAjeno)

	_, err = uc.Obtener(idAdmin, "d-María Pérez")
	assert.NoError(t, err, "el admin accede a cualquier colegio")
}

func TestActualizar(t *testing.T) {
	repo := nuevoFakeDocentes(docenteDe("c-1", "María Pérez"))
	uc := docente.NewUseCase(repo)

	nombre := "María P. de García"
	activo := false
	out, err := uc.Actualizar(idColegio1, "d-María Pérez", dto.UpdateDocenteRequest{
		Nombre: &nombre,
		Activo: &activo,
	})
	require.NoError(t, err)
	assert.Equal(t, nombre, out.Nombre)
	assert.False(t, out.Activo)

	guardado, _ := repo.GetByID("d-María Pérez")
	assert.Equal(t, nombre, guardado.Nombre, "el cambio debe persistir")
}

// Renombrar a un nombre ya usado en el mismo colegio se rechaza igual que
// en Crear; conservar el propio nombre no cuenta como duplicado.
func TestActualizar_NombreDuplicadoEnElColegio(t *testing.T) {
	repo := nuevoFakeDocentes(
		docenteDe("c-1", "María Pérez"),
		docenteDe("c-1", "Juan Gómez"),
	)
	uc := docente.NewUseCase(repo)

	nombre := "María Pérez"
	_, err := uc.Actualizar(idColegio1, "d-Juan Gómez", dto.UpdateDocenteRequest{Nombre: &nombre})
	assert.ErrorIs(t, err, domain.ErrDocenteDuplicado)

	guardado, _ := repo.GetByID("d-Juan Gómez")
	assert.Equal(t, "Juan Gómez", guardado.Nombre, "el rechazo no debe dejar cambios")

	// Mandar el mismo nombre que ya tiene no es un duplicado.
	mismo := "Juan Gómez"
	telefono := "3001234567"
	out, err := uc.Actualizar(idColegio1, "d-Juan Gómez", dto.UpdateDocenteRequest{
		Nombre:   &mismo,
		Telefono: &telefono,
	})
	require.NoError(t, err)
	assert.Equal(t, telefono, out.Telefono)
}

func TestEliminar(t *testing.T) {
	repo := nuevoFakeDocentes(docenteDe("c-1", "María Pérez"))
	uc := docente.NewUseCase(repo)

	require.NoError(t, uc.Eliminar(idColegio1, "d-María Pérez"))

	err := uc.Eliminar(idColegio1, "d-María Pérez")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEliminar_ColegioAjeno(t *testing.T) {
	uc := docente.NewUseCase(nuevoFakeDocentes(docenteDe("c-1", "María Pérez")))

	err := uc.Eliminar(idColegio2, "d-María Pérez")
	assert.ErrorIs(t, err, domain.ErrColegioAjeno)
}

func TestListar(t *testing.T) {
	uc := docente.NewUseCase(nuevoFakeDocentes(
		docenteDe("c-1", "María Pérez"),
		docenteDe("c-1", "Juan Gómez"),
		docenteDe("c-2", "Ana Ruiz"),
	))

	out, err := uc.Listar(idColegio1, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2, "solo docentes del propio colegio")

	out, err = uc.Listar(idAdmin, "c-2", 20, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
}
