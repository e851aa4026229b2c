package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/conectfibra/gestor-api/internal/application/auth"
	"github.com/conectfibra/gestor-api/internal/application/contrato"
	"github.com/conectfibra/gestor-api/internal/application/estoque"
	"github.com/conectfibra/gestor-api/internal/application/notificacao"
	"github.com/conectfibra/gestor-api/internal/application/usecase"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
	"github.com/conectfibra/gestor-api/pkg/metrics"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	EmpresaUC     *usecase.EmpresaUseCase
	ClienteUC     *usecase.ClienteUseCase
	PlanoUC       *usecase.PlanoUseCase
	VeiculoUC     *usecase.VeiculoUseCase
	MaterialUC    *usecase.MaterialUseCase
	MovimentarUC  *estoque.MovimentarUseCase
	ContratoUC    *contrato.UseCase
	AcaoUC        *contrato.AcaoUseCase
	VencimentoUC  *contrato.VencimentoUseCase
	NotificacaoUC *notificacao.UseCase
	AuthUC        *auth.AuthUseCase
	Metrics       *metrics.Metrics
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Empresas (público para bootstrap do cadastro)
	empresas := api.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresas.Post("/", empresaHandler.Create)
	empresas.Get("/", empresaHandler.List)
	empresas.Get("/:id", empresaHandler.GetByID)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", RequireRole(entity.RoleAdmin), clienteHandler.Delete)

	// Planos
	planos := protected.Group("/planos")
	planoHandler := NewPlanoHandler(deps.PlanoUC)
	planos.Post("/", RequireRole(entity.RoleAdmin), planoHandler.Create)
	planos.Get("/", planoHandler.List)
	planos.Get("/:id", planoHandler.GetByID)
	planos.Put("/:id", RequireRole(entity.RoleAdmin), planoHandler.Update)

	// Veículos
	veiculos := protected.Group("/veiculos")
	veiculoHandler := NewVeiculoHandler(deps.VeiculoUC)
	veiculos.Post("/", RequireRole(entity.RoleAdmin), veiculoHandler.Create)
	veiculos.Get("/", veiculoHandler.List)
	veiculos.Get("/:id", veiculoHandler.GetByID)

	// Materiais e movimentação de estoque
	materiais := protected.Group("/materiais")
	materialHandler := NewMaterialHandler(deps.MaterialUC, deps.MovimentarUC, deps.Metrics)
	materiais.Post("/", materialHandler.Create)
	materiais.Get("/", materialHandler.List)
	materiais.Get("/:id", materialHandler.GetByID)
	materiais.Post("/:id/movimentar", RequireRole(entity.RoleAdmin, entity.RoleTecnico), materialHandler.Movimentar)
	materiais.Get("/:id/localizacao", materialHandler.Localizacao)
	materiais.Get("/:id/historico", materialHandler.Historico)

	// Contratos
	contratos := protected.Group("/contratos")
	contratoHandler := NewContratoHandler(deps.ContratoUC, deps.AcaoUC, deps.VencimentoUC, deps.Metrics)
	contratos.Post("/", RequireRole(entity.RoleAdmin, entity.RoleAtendente), contratoHandler.Create)
	contratos.Get("/", contratoHandler.List)
	contratos.Get("/:id", contratoHandler.GetByID)
	contratos.Get("/:id/titulos", contratoHandler.Titulos)
	contratos.Post("/:id/acao", RequireRole(entity.RoleAdmin, entity.RoleAtendente), contratoHandler.AplicarAcao)
	contratos.Put("/:id/dia-vencimento", RequireRole(entity.RoleAdmin, entity.RoleAtendente), contratoHandler.TrocarDiaVencimento)

	// Templates de mensagem e notificações
	notificacaoHandler := NewNotificacaoHandler(deps.NotificacaoUC, deps.Metrics)
	templates := protected.Group("/templates")
	templates.Get("/", notificacaoHandler.ListTemplates)
	templates.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleAtendente), notificacaoHandler.UpdateTemplate)
	templates.Patch("/:id/ativo", RequireRole(entity.RoleAdmin, entity.RoleAtendente), notificacaoHandler.SetAtivo)

	notificacoes := protected.Group("/notificacoes")
	notificacoes.Post("/lembrete", RequireRole(entity.RoleAdmin, entity.RoleAtendente), notificacaoHandler.EnviarLembrete)
}
