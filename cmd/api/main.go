package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/proveedores-api/internal/application/auth"
	"github.com/tu-usuario/proveedores-api/internal/application/proveedor"
	infrapdf "github.com/tu-usuario/proveedores-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/proveedores-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/proveedores-api/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/proveedores-api/internal/interfaces/http"
	"github.com/tu-usuario/proveedores-api/pkg/config"
	"github.com/tu-usuario/proveedores-api/pkg/logger"
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

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("preparar esquema")
	}

	proveedorRepo := postgres.NewProveedorRepository(pool)
	userRepo := postgres.NewUsuarioRepository(pool)

	fileStore, err := storage.NewS3FileStore(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén de archivos")
	}

	proveedorUC := proveedor.NewProveedorUseCase(proveedorRepo, fileStore, log)

	// PDF: hoja resumen del proveedor para el panel de revisión
	hojaGenerator := infrapdf.NewMarotoHojaGenerator()
	hojaUC := proveedor.NewHojaUseCase(proveedorRepo, hojaGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    32 * 1024 * 1024, // formulario con varios PDF adjuntos
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Proveedores API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProveedorUC: proveedorUC,
		HojaUC:      hojaUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
