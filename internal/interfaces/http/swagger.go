package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// MountSwagger registra la UI de swagger en /docs si el archivo JSON existe.
// swagger.New entra en pánico con el archivo ausente, así que sin él se
// omite la UI y la API opera igual. Devuelve si la UI quedó montada.
func MountSwagger(app *fiber.App, filePath, title string, log zerolog.Logger) bool {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).
			Msg("swagger.json no disponible, UI de docs deshabilitada")
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
	return true
}
