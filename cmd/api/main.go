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

	"github.com/alcaldia-digital/patrimonio-api/internal/application/auth"
	"github.com/alcaldia-digital/patrimonio-api/internal/application/inventory"
	"github.com/alcaldia-digital/patrimonio-api/internal/application/movement"
	"github.com/alcaldia-digital/patrimonio-api/internal/infrastructure/migrate"
	"github.com/alcaldia-digital/patrimonio-api/internal/infrastructure/patrimonio"
	infrapdf "github.com/alcaldia-digital/patrimonio-api/internal/infrastructure/pdf"
	"github.com/alcaldia-digital/patrimonio-api/internal/infrastructure/postgres"
	httpRouter "github.com/alcaldia-digital/patrimonio-api/internal/interfaces/http"
	"github.com/alcaldia-digital/patrimonio-api/pkg/config"
	"github.com/alcaldia-digital/patrimonio-api/pkg/logger"
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

	if cfg.App.MigrateOnStart {
		if err := migrate.Up(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones al día")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	detailRepo := postgres.NewInventoryDetailRepository(pool)

	patrimonioClient := patrimonio.NewClient(cfg.Patrimonio, log)

	// El listener sincroniza el estado del bien después de cada transición.
	assetSync := movement.NewAssetStatusSync(patrimonioClient, log)
	movementUC := movement.NewMovementUseCase(movementRepo, assetSync)

	actaGenerator := infrapdf.NewMarotoActaGenerator()
	actaUC := movement.NewActaUseCase(movementRepo, patrimonioClient, patrimonioClient, actaGenerator)

	inventoryUC := inventory.NewInventoryUseCase(inventoryRepo, patrimonioClient)
	detailUC := inventory.NewDetailUseCase(inventoryRepo, detailRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Patrimonio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		MovementUC:  movementUC,
		ActaUC:      actaUC,
		InventoryUC: inventoryUC,
		DetailUC:    detailUC,
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
