package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/macedocontabil/macedo-si-api/internal/application/auth"
	"github.com/macedocontabil/macedo-si-api/internal/application/usecase"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	ClientUC       *usecase.ClientUseCase
	FinanceiroUC   *usecase.FinanceiroUseCase
	TrabalhistaUC  *usecase.TrabalhistaUseCase
	FiscalUC       *usecase.FiscalUseCase
	AtendimentoUC  *usecase.AtendimentoUseCase
	ChatUC         *usecase.ChatUseCase
	TaskUC         *usecase.TaskUseCase
	ConfiguracaoUC *usecase.ConfiguracaoUseCase
	UserRepo       repository.UserRepository
	JWTSecret      string
}

// Router registra as rotas da API. Só o login é público; todo o resto
// exige Bearer Token, e os módulos setoriais exigem também o setor.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))

	// Gestão de usuários (as regras de admin ficam no caso de uso)
	authProtected := protected.Group("/auth")
	authProtected.Post("/register", authHandler.Register)
	authProtected.Get("/me", authHandler.Me)
	authProtected.Get("/users", authHandler.ListUsers)
	authProtected.Get("/users/:id", authHandler.GetUser)
	authProtected.Put("/users/:id", authHandler.UpdateUser)

	// Clientes (recorte por cidade no caso de uso)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/cnpj/:cnpj", clientHandler.GetByCNPJ)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Financeiro (setor financeiro)
	financial := protected.Group("/financial", RequireSetor(entity.SetorFinanceiro))
	financeiroHandler := NewFinanceiroHandler(deps.FinanceiroUC)
	financial.Post("/contas-receber", financeiroHandler.CreateConta)
	financial.Get("/contas-receber", financeiroHandler.ListContas)
	financial.Get("/contas-receber/:id", financeiroHandler.GetConta)
	financial.Put("/contas-receber/:id", financeiroHandler.UpdateConta)
	financial.Put("/contas-receber/:id/baixa", financeiroHandler.BaixarConta)
	financial.Patch("/contas-receber/:id/situacao", financeiroHandler.AlterarSituacao)
	financial.Get("/contas-receber/:id/recibo", financeiroHandler.Recibo)
	financial.Get("/dashboard-stats", financeiroHandler.Dashboard)
	financial.Post("/clientes", financeiroHandler.CreateFinancialClient)
	financial.Get("/clientes", financeiroHandler.ListFinancialClients)
	financial.Get("/clientes/:empresaId", financeiroHandler.GetFinancialClient)

	// Trabalhista (setor trabalhista)
	trabalhista := protected.Group("/trabalhista", RequireSetor(entity.SetorTrabalhista))
	trabalhistaHandler := NewTrabalhistaHandler(deps.TrabalhistaUC)
	trabalhista.Post("/solicitacoes", trabalhistaHandler.Create)
	trabalhista.Get("/solicitacoes", trabalhistaHandler.List)
	trabalhista.Get("/stats/dashboard", trabalhistaHandler.Stats)
	trabalhista.Get("/solicitacoes/:id", trabalhistaHandler.GetByID)
	trabalhista.Put("/solicitacoes/:id", trabalhistaHandler.Update)
	trabalhista.Delete("/solicitacoes/:id", trabalhistaHandler.Delete)

	// Fiscal (setor fiscal)
	fiscal := protected.Group("/fiscal", RequireSetor(entity.SetorFiscal))
	fiscalHandler := NewFiscalHandler(deps.FiscalUC)
	fiscal.Post("/obrigacoes", fiscalHandler.Create)
	fiscal.Get("/obrigacoes", fiscalHandler.List)
	fiscal.Get("/obrigacoes/:id", fiscalHandler.GetByID)
	fiscal.Put("/obrigacoes/:id", fiscalHandler.Update)
	fiscal.Delete("/obrigacoes/:id", fiscalHandler.Delete)

	// Atendimento (setor atendimento)
	atendimento := protected.Group("/atendimento", RequireSetor(entity.SetorAtendimento))
	atendimentoHandler := NewAtendimentoHandler(deps.AtendimentoUC)
	atendimento.Post("/tickets", atendimentoHandler.Create)
	atendimento.Get("/tickets", atendimentoHandler.List)
	atendimento.Get("/tickets/:id", atendimentoHandler.GetByID)
	atendimento.Put("/tickets/:id", atendimentoHandler.Update)
	atendimento.Post("/tickets/:id/conversas", atendimentoHandler.AddConversa)

	// Chat interno (recorte por participação no caso de uso)
	chats := protected.Group("/chats")
	chatHandler := NewChatHandler(deps.ChatUC)
	chats.Post("/", chatHandler.Create)
	chats.Get("/", chatHandler.List)
	chats.Get("/:id", chatHandler.GetByID)
	chats.Get("/:id/mensagens", chatHandler.ListMensagens)
	chats.Post("/:id/mensagens", chatHandler.AddMensagem)

	// Tarefas (recorte por posse no caso de uso)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/stats/dashboard", taskHandler.Stats)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Post("/:id/comentarios", taskHandler.AddComentario)

	// Configurações (recorte por setor no caso de uso)
	configuracoes := protected.Group("/configuracoes")
	configuracaoHandler := NewConfiguracaoHandler(deps.ConfiguracaoUC)
	configuracoes.Post("/", configuracaoHandler.Create)
	configuracoes.Get("/", configuracaoHandler.List)
	configuracoes.Get("/:id", configuracaoHandler.GetByID)
	configuracoes.Put("/:id", configuracaoHandler.Update)
}
