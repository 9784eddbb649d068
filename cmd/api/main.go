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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jfirmino/armazem-api/internal/application/auth"
	"github.com/jfirmino/armazem-api/internal/application/movimentos"
	"github.com/jfirmino/armazem-api/internal/application/relatorios"
	"github.com/jfirmino/armazem-api/internal/application/usecase"
	"github.com/jfirmino/armazem-api/internal/infrastructure/postgres"
	httpRouter "github.com/jfirmino/armazem-api/internal/interfaces/http"
	"github.com/jfirmino/armazem-api/pkg/config"
	"github.com/jfirmino/armazem-api/pkg/logger"
	"github.com/jfirmino/armazem-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("a iniciar aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("ligação ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	equipamentoRepo := postgres.NewEquipamentoRepository(pool)
	viaturaRepo := postgres.NewViaturaRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	obraRepo := postgres.NewObraRepository(pool)
	movimentoRepo := postgres.NewMovimentoRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	equipamentoUC := usecase.NewEquipamentoUseCase(equipamentoRepo)
	viaturaUC := usecase.NewViaturaUseCase(viaturaRepo)
	materialUC := usecase.NewMaterialUseCase(materialRepo, movimentoRepo)
	obraUC := usecase.NewObraUseCase(obraRepo)
	registarMovimentoUC := movimentos.NewRegistarMovimentoUseCase(
		movimentoRepo, equipamentoRepo, viaturaRepo, materialRepo, obraRepo,
	)
	relatoriosUC := relatorios.NewRelatoriosUseCase(
		movimentoRepo, equipamentoRepo, viaturaRepo, materialRepo, obraRepo,
		relatorios.AlertasConfig{
			DiasAntecedencia: cfg.Alerta.DiasAntecedencia,
			LimiarUrgente:    cfg.Alerta.LimiarUrgente,
		},
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	apiMetrics := metrics.NewAPIMetrics(registry)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Armazém API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		EquipamentoUC:     equipamentoUC,
		ViaturaUC:         viaturaUC,
		MaterialUC:        materialUC,
		ObraUC:            obraUC,
		RegistarMovimento: registarMovimentoUC,
		RelatoriosUC:      relatoriosUC,
		Metrics:           apiMetrics,
		JWTSecret:         cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP terminado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de paragem recebido, a fechar o servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("paragem do servidor")
	}

	log.Info().Msg("aplicação terminada")
}
