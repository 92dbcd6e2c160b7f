package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jorsalda/SistPROF/internal/application/admin"
	"github.com/jorsalda/SistPROF/internal/application/auth"
	"github.com/jorsalda/SistPROF/internal/application/docente"
	"github.com/jorsalda/SistPROF/internal/application/permiso"
	"github.com/jorsalda/SistPROF/internal/infrastructure/postgres"
	httpRouter "github.com/jorsalda/SistPROF/internal/interfaces/http"
	"github.com/jorsalda/SistPROF/pkg/config"
	"github.com/jorsalda/SistPROF/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	colegioRepo := postgres.NewColegioRepository(pool)
	docenteRepo := postgres.NewDocenteRepository(pool)
	permisoRepo := postgres.NewPermisoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(txRunner, usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.Config{
		MaxIntentos: cfg.Auth.MaxIntentos,
		Bloqueo:     cfg.Auth.Bloqueo(),
		DiasPrueba:  cfg.Auth.DiasPrueba,
	})
	docenteUC := docente.NewUseCase(docenteRepo)
	permisoUC := permiso.NewUseCase(permisoRepo, docenteRepo)
	adminUC := admin.NewUseCase(txRunner, usuarioRepo, colegioRepo, docenteRepo, permisoRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if !httpRouter.SwaggerUI(app, "./docs/swagger.json", "SistPROF API") {
		log.Warn().Msg("docs/swagger.json no encontrado, UI de swagger deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		DocenteUC: docenteUC,
		PermisoUC: permisoUC,
		AdminUC:   adminUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
