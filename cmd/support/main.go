package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/conectfibra/gestor-api/internal/infrastructure/mysql"
	"github.com/conectfibra/gestor-api/internal/interfaces/suporte"
	"github.com/conectfibra/gestor-api/pkg/config"
	"github.com/conectfibra/gestor-api/pkg/logger"
)

// Servidor de suporte: escreve credenciais PPPoE no banco MySQL do RADIUS e
// consulta sessões de accounting. Roda separado da API principal porque é o
// único componente com acesso à rede do RADIUS.
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
		Msg("iniciando servidor de suporte")

	store, err := mysql.NewRadiusStore(cfg.MySQL)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao MySQL do RADIUS")
	}
	defer func() { _ = store.Close() }()

	app := fiber.New(fiber.Config{
		AppName:      "gestor-suporte",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	suporte.SetupRoutes(app, suporte.NewHandler(store, log))

	go func() {
		if err := app.Listen(cfg.Suporte.Addr()); err != nil {
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

	log.Info().Msg("servidor de suporte encerrado")
}
