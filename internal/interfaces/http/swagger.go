package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// SwaggerUI registra la UI de Swagger en /docs solo si el spec generado
// existe en disco. El middleware de contrib entra en pánico ante un archivo
// ausente y el spec no siempre acompaña al binario desplegado. Devuelve si
// la UI quedó habilitada.
func SwaggerUI(app *fiber.App, filePath, titulo string) bool {
	if _, err := os.Stat(filePath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    titulo,
	}))
	return true
}
