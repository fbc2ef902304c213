package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appacceptance "github.com/tu-usuario/suministros-api/internal/application/acceptance"
	"github.com/tu-usuario/suministros-api/internal/application/auth"
	apphierarchy "github.com/tu-usuario/suministros-api/internal/application/hierarchy"
	apporders "github.com/tu-usuario/suministros-api/internal/application/orders"
	"github.com/tu-usuario/suministros-api/internal/application/usecase"
	"github.com/tu-usuario/suministros-api/internal/infrastructure/bff"
	infraedi "github.com/tu-usuario/suministros-api/internal/infrastructure/edi"
	"github.com/tu-usuario/suministros-api/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/suministros-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/suministros-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/suministros-api/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/suministros-api/internal/interfaces/http"
	"github.com/tu-usuario/suministros-api/internal/interfaces/ws"
	"github.com/tu-usuario/suministros-api/pkg/config"
	"github.com/tu-usuario/suministros-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
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

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	hierarchyRepo := postgres.NewHierarchyRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	// Las recepciones viven en memoria del proceso: el contrato del
	// microservicio original no persiste entre reinicios.
	acceptanceRepo := memory.NewAcceptanceRepository()

	photoStore, err := storage.NewLocalPhotoStore(cfg.Upload.Dir, cfg.Upload.PublicPath)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de fotos")
	}
	receiptGen := infrapdf.NewMarotoReceiptGenerator()
	acceptanceUC := appacceptance.NewUseCase(acceptanceRepo, photoStore, receiptGen, cfg.Upload.MaxBytes)

	hierarchyUC := apphierarchy.NewUseCase(hierarchyRepo)

	hub := ws.NewHub(log.Zerolog())
	ediParser := infraedi.NewDispatchAdviceParser()
	orderUC := apporders.NewUseCase(orderRepo, hub, ediParser)

	customerUC := usecase.NewCustomerUseCase(customerRepo)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, orderRepo)
	profileUC := usecase.NewProfileUseCase(userRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// BFF: si no hay upstream configurado, apunta a este mismo proceso.
	upstream := cfg.Hierarchy.BaseURL
	if upstream == "" {
		upstream = fmt.Sprintf("http://127.0.0.1:%d", cfg.HTTP.Port)
	}
	bffProxy := bff.NewProxy(upstream, time.Duration(cfg.Hierarchy.TimeoutMS)*time.Millisecond)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// Por encima del máximo por foto: el 413 de tamaño lo decide el
		// caso de uso, no el framework.
		BodyLimit: int(cfg.Upload.MaxBytes) + 1<<20,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Suministros API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AcceptanceUC: acceptanceUC,
		HierarchyUC:  hierarchyUC,
		OrderUC:      orderUC,
		CustomerUC:   customerUC,
		PaymentUC:    paymentUC,
		ProfileUC:    profileUC,
		DashboardUC:  dashboardUC,
		AuthUC:       authUC,
		BFFProxy:     bffProxy,
		Hub:          hub,
		JWTSecret:    cfg.JWT.Secret,
		ServiceName:  cfg.App.Name,
		Environment:  cfg.App.Env,
		UploadDir:    cfg.Upload.Dir,
		UploadPath:   cfg.Upload.PublicPath,
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
