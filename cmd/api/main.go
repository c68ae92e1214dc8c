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

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/auth"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/booking"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/cart"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/doctors"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/pharmacy"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/purchases"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/session"
	infrapdf "github.com/SalcedoCAMP/ProyectoClinica/internal/infrastructure/pdf"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/infrastructure/postgres"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/livequery"
	httpRouter "github.com/SalcedoCAMP/ProyectoClinica/internal/interfaces/http"
	"github.com/SalcedoCAMP/ProyectoClinica/pkg/config"
	"github.com/SalcedoCAMP/ProyectoClinica/pkg/logger"
)

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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}
	if err := postgres.Seed(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("datos iniciales")
	}

	bus := livequery.NewBus()

	userRepo := postgres.NewUserRepository(pool)
	doctorRepo := postgres.NewDoctorRepository(pool, bus)
	productRepo := postgres.NewProductRepository(pool, bus)
	appointmentRepo := postgres.NewAppointmentRepository(pool, bus)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	txRunner := postgres.NewTxRunner(pool, bus)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	doctorUC := doctors.NewUseCase(doctorRepo, bus)
	pharmacyUC := pharmacy.NewUseCase(productRepo, bus)
	bookingUC := booking.NewUseCase(appointmentRepo, doctorRepo, userRepo, bus)
	checkoutUC := cart.NewCheckoutUseCase(txRunner)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	purchasesUC := purchases.NewUseCase(purchaseRepo, userRepo, receiptGenerator, bus)

	// Los carritos viven en memoria, uno por usuario autenticado; el handler
	// de logout descarta el del propio usuario.
	carts := cart.NewManager()
	sessionState := session.NewState()

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
		Title:    "Clínica API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		DoctorUC:    doctorUC,
		PharmacyUC:  pharmacyUC,
		BookingUC:   bookingUC,
		PurchasesUC: purchasesUC,
		CheckoutUC:  checkoutUC,
		Carts:       carts,
		Session:     sessionState,
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
