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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/conectfibra/gestor-api/internal/application/auth"
	"github.com/conectfibra/gestor-api/internal/application/contrato"
	"github.com/conectfibra/gestor-api/internal/application/estoque"
	"github.com/conectfibra/gestor-api/internal/application/notificacao"
	"github.com/conectfibra/gestor-api/internal/application/usecase"
	"github.com/conectfibra/gestor-api/internal/infrastructure/cobranca"
	"github.com/conectfibra/gestor-api/internal/infrastructure/postgres"
	"github.com/conectfibra/gestor-api/internal/infrastructure/provisionamento"
	infrasuporte "github.com/conectfibra/gestor-api/internal/infrastructure/suporte"
	"github.com/conectfibra/gestor-api/internal/infrastructure/whatsapp"
	httpRouter "github.com/conectfibra/gestor-api/internal/interfaces/http"
	"github.com/conectfibra/gestor-api/pkg/config"
	"github.com/conectfibra/gestor-api/pkg/logger"
	"github.com/conectfibra/gestor-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	empresaRepo := postgres.NewEmpresaRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	planoRepo := postgres.NewPlanoRepository(pool)
	veiculoRepo := postgres.NewVeiculoRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	contratoRepo := postgres.NewContratoRepository(pool)
	tituloRepo := postgres.NewTituloRepository(pool)
	locRepo := postgres.NewLocalizacaoRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	estoqueTxRunner := postgres.NewEstoqueTxRunner(pool)

	mets := metrics.New("gestor")

	provisionador := provisionamento.NewClient(cfg.Webhook.ProvisionamentoURL, log)
	regenerador := cobranca.NewClient(cfg.Webhook.RegeneracaoURL)
	enviadorWhats := whatsapp.NewClient(cfg.WhatsApp.BaseURL, cfg.WhatsApp.Token, log)
	credenciaisRadius := infrasuporte.NewClient(cfg.Suporte.BaseURL)

	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	planoUC := usecase.NewPlanoUseCase(planoRepo)
	veiculoUC := usecase.NewVeiculoUseCase(veiculoRepo)
	materialUC := usecase.NewMaterialUseCase(materialRepo)
	movimentarUC := estoque.NewMovimentarUseCase(estoqueTxRunner, materialRepo, veiculoRepo, contratoRepo, locRepo)
	contratoUC := contrato.NewUseCase(contratoRepo, clienteRepo, planoRepo, tituloRepo, credenciaisRadius, log)
	acaoUC := contrato.NewAcaoUseCase(contratoRepo, planoRepo, provisionador)
	vencimentoUC := contrato.NewVencimentoUseCase(contratoRepo, tituloRepo, regenerador, txRunner, log)
	notificacaoUC := notificacao.NewUseCase(templateRepo, contratoRepo, clienteRepo, tituloRepo, planoRepo, enviadorWhats)
	authUC := auth.NewAuthUseCase(userRepo, empresaRepo, auth.JWTConfig{
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

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmpresaUC:     empresaUC,
		ClienteUC:     clienteUC,
		PlanoUC:       planoUC,
		VeiculoUC:     veiculoUC,
		MaterialUC:    materialUC,
		MovimentarUC:  movimentarUC,
		ContratoUC:    contratoUC,
		AcaoUC:        acaoUC,
		VencimentoUC:  vencimentoUC,
		NotificacaoUC: notificacaoUC,
		AuthUC:        authUC,
		Metrics:       mets,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
