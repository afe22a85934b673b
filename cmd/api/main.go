package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/licorera-pos/internal/application/auth"
	appsync "github.com/tu-usuario/licorera-pos/internal/application/sync"
	"github.com/tu-usuario/licorera-pos/internal/application/usecase"
	"github.com/tu-usuario/licorera-pos/internal/infrastructure/postgres"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
	httpRouter "github.com/tu-usuario/licorera-pos/internal/interfaces/http"
	"github.com/tu-usuario/licorera-pos/pkg/config"
	"github.com/tu-usuario/licorera-pos/pkg/logger"
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

	// Store local: autoritativo para identidades, sesiones y auditoría.
	if dir := filepath.Dir(cfg.Local.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Msg("crear directorio del store local")
		}
	}
	store, err := localstore.NewSQLite(cfg.Local.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store local")
	}
	defer store.Close()

	if err := localstore.Seed(store, localstore.SeedConfig(cfg.Seed), auth.HashPassword); err != nil {
		log.Fatal().Err(err).Msg("seed del store local")
	}

	// Espejo remoto opcional: si Postgres no responde, la app opera en modo
	// local-only y el shim reporta durabilidad "local".
	ctx := context.Background()
	var repos appsync.Repos
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Warn().Err(err).Msg("PostgreSQL no disponible, operando solo con store local")
	} else {
		defer pool.Close()
		repos = appsync.Repos{
			Products:    postgres.NewProductRepository(pool),
			Sales:       postgres.NewSaleRepository(pool),
			Assignments: postgres.NewAssignmentRepository(pool),
			Users:       postgres.NewUserRepository(pool),
		}
	}

	shim := appsync.NewService(repos, store, log.Zerolog(),
		time.Duration(cfg.Local.RemoteTimeoutSeconds)*time.Second)

	activity := auth.NewActivityLog(store)
	sessions := auth.NewSessionManager(store, activity)
	throttle := auth.NewThrottle(store)
	authUC := auth.NewAuthUseCase(store, throttle, sessions, activity, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	productUC := usecase.NewProductUseCase(shim)
	saleUC := usecase.NewSaleUseCase(shim, store)
	assignmentUC := usecase.NewAssignmentUseCase(shim, store)
	userUC := usecase.NewUserUseCase(store, activity)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	httpRouter.MountSwagger(app, "./docs/swagger.json", "Licorera POS API", log.Zerolog())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		SaleUC:       saleUC,
		AssignmentUC: assignmentUC,
		UserUC:       userUC,
		Shim:         shim,
		JWTSecret:    cfg.JWT.Secret,
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
