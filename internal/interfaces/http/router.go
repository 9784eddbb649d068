package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfirmino/armazem-api/internal/application/auth"
	"github.com/jfirmino/armazem-api/internal/application/movimentos"
	"github.com/jfirmino/armazem-api/internal/application/relatorios"
	"github.com/jfirmino/armazem-api/internal/application/usecase"
	"github.com/jfirmino/armazem-api/pkg/metrics"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	EquipamentoUC     *usecase.EquipamentoUseCase
	ViaturaUC         *usecase.ViaturaUseCase
	MaterialUC        *usecase.MaterialUseCase
	ObraUC            *usecase.ObraUseCase
	RegistarMovimento *movimentos.RegistarMovimentoUseCase
	RelatoriosUC      *relatorios.RelatoriosUseCase
	Metrics           *metrics.APIMetrics
	JWTSecret         string
}

// Router regista as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público: register e login)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Equipamentos (protegido)
	equipamentos := protected.Group("/equipamentos")
	equipamentoHandler := NewEquipamentoHandler(deps.EquipamentoUC)
	equipamentos.Post("/", equipamentoHandler.Create)
	equipamentos.Get("/", equipamentoHandler.List)
	equipamentos.Get("/:id", equipamentoHandler.GetByID)
	equipamentos.Put("/:id", equipamentoHandler.Update)
	equipamentos.Patch("/:id/manutencao", equipamentoHandler.Manutencao)
	equipamentos.Delete("/:id", equipamentoHandler.Delete)

	// Viaturas (protegido)
	viaturas := protected.Group("/viaturas")
	viaturaHandler := NewViaturaHandler(deps.ViaturaUC)
	viaturas.Post("/", viaturaHandler.Create)
	viaturas.Get("/", viaturaHandler.List)
	viaturas.Get("/:id", viaturaHandler.GetByID)
	viaturas.Put("/:id", viaturaHandler.Update)
	viaturas.Patch("/:id/manutencao", viaturaHandler.Manutencao)
	viaturas.Delete("/:id", viaturaHandler.Delete)

	// Materiais (protegido)
	materiais := protected.Group("/materiais")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materiais.Post("/", materialHandler.Create)
	materiais.Get("/", materialHandler.List)
	materiais.Get("/:id", materialHandler.GetByID)
	materiais.Put("/:id", materialHandler.Update)
	materiais.Delete("/:id", materialHandler.Delete)

	// Obras (protegido)
	obras := protected.Group("/obras")
	obraHandler := NewObraHandler(deps.ObraUC)
	obras.Post("/", obraHandler.Create)
	obras.Get("/", obraHandler.List)
	obras.Get("/:id", obraHandler.GetByID)
	obras.Put("/:id", obraHandler.Update)
	obras.Delete("/:id", obraHandler.Delete)

	// Movimentos (protegido, ledger append-only)
	movs := protected.Group("/movimentos")
	movimentoHandler := NewMovimentoHandler(deps.RegistarMovimento, deps.Metrics)
	movs.Post("/", movimentoHandler.Registar)
	movs.Get("/", movimentoHandler.Listar)

	// Relatórios (protegido)
	rel := protected.Group("/relatorios")
	relatorioHandler := NewRelatorioHandler(deps.RelatoriosUC, deps.Metrics)

	rel.Get("/movimentos", relatorioHandler.Movimentos)
	rel.Get("/stock", relatorioHandler.Stock)
	rel.Get("/obra/:id", relatorioHandler.Obra)
	rel.Get("/manutencoes", relatorioHandler.Manutencoes)
	rel.Get("/utilizacao", relatorioHandler.Utilizacao)
	rel.Get("/alertas", relatorioHandler.Alertas)

	// Dashboard (protegido)
	protected.Get("/summary", relatorioHandler.Resumo)
	protected.Get("/alerts/check", relatorioHandler.VerificarAlertas)
}
