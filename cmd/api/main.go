package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Ventanilla-api/internal/application/audit"
	"github.com/jhoicas/Ventanilla-api/internal/application/auth"
	"github.com/jhoicas/Ventanilla-api/internal/application/card"
	"github.com/jhoicas/Ventanilla-api/internal/application/customer"
	"github.com/jhoicas/Ventanilla-api/internal/application/onlinemode"
	"github.com/jhoicas/Ventanilla-api/internal/application/usecase"
	"github.com/jhoicas/Ventanilla-api/internal/infrastructure/kafka"
	"github.com/jhoicas/Ventanilla-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Ventanilla-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Ventanilla-api/internal/interfaces/http"
	"github.com/jhoicas/Ventanilla-api/pkg/config"
	"github.com/jhoicas/Ventanilla-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Strs("kafka_brokers", cfg.Kafka.Brokers).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Un registro de métricas por proceso.
	prom := metrics.NewPrometheus()

	customerRepo := postgres.NewCustomerRepository(pool)
	cardRepo := postgres.NewCardRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	cashierRepo := postgres.NewCashierRepository(pool)

	auditPublisher := kafka.NewAuditPublisher(cfg.Kafka)
	defer func() {
		if err := auditPublisher.Close(); err != nil {
			log.Warn().Err(err).Msg("cierre del publicador de bitácora")
		}
	}()

	onlineSvc := onlinemode.NewService(
		postgres.NewRegistryChecker(pool),
		kafka.NewBrokerChecker(cfg.Kafka),
		cfg.OnlineMode.CheckTimeout,
		prom,
	)
	authUC := auth.NewAuthUseCase(cashierRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	searchUC := customer.NewSearchUseCase(customerRepo, prom, cfg.Search.EnrichConcurrency)
	detailUC := customer.NewDetailUseCase(customerRepo)
	cardUC := card.NewCardUseCase(cardRepo, customerRepo, prom, log)
	auditUC := audit.NewRecordUseCase(auditRepo, auditPublisher, log)
	locationUC := usecase.NewLocationUseCase(locationRepo)

	if st := onlineSvc.Check(ctx); !st.Online() {
		log.Warn().Str("reason", st.Reason()).Msg("arranque fuera de línea; las búsquedas se rechazarán hasta que las dependencias respondan")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs (requiere swag init)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Ventanilla API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(prom.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		SearchUC:   searchUC,
		DetailUC:   detailUC,
		CardUC:     cardUC,
		AuditUC:    auditUC,
		LocationUC: locationUC,
		OnlineMode: onlineSvc,
		JWTSecret:  cfg.JWT.Secret,
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
