package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jorsalda/SistPROF/internal/interfaces/http"
)

// Sin el spec generado en disco la UI queda deshabilitada y la app arranca
// y sirve el resto de rutas con normalidad.
func TestSwaggerUI_SinArchivoNoRegistra(t *testing.T) {
	app := fiber.New()
	habilitada := apphttp.SwaggerUI(app, filepath.Join(t.TempDir(), "swagger.json"), "Test API")
	assert.False(t, habilitada, "sin spec no debe registrarse el middleware")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Con el spec presente la UI se habilita sin interferir con las demás rutas.
func TestSwaggerUI_ConArchivoRegistra(t *testing.T) {
	spec := filepath.Join(t.TempDir(), "swagger.json")
	contenido := `{"openapi":"3.0.3","info":{"title":"Test API","version":"1.0.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(spec, []byte(contenido), 0o600))

	app := fiber.New()
	habilitada := apphttp.SwaggerUI(app, spec, "Test API")
	assert.True(t, habilitada)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
