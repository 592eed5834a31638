package dto

import (
	"time"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// CreateTaskRequest criação de tarefa; criador vem do token.
type CreateTaskRequest struct {
	Titulo        string   `json:"titulo" validate:"required"`
	Descricao     string   `json:"descricao"`
	Prioridade    string   `json:"prioridade" validate:"required,oneof=baixa media alta urgente"`
	Categoria     string   `json:"categoria" validate:"required,oneof=comercial financeiro trabalhista fiscal contabil atendimento"`
	ResponsavelID string   `json:"responsavel_id" validate:"required"`
	DataPrazo     string   `json:"data_prazo"`
	Tags          []string `json:"tags"`
	Arquivos      []string `json:"arquivos"`
}

// UpdateTaskRequest atualização parcial; concluir força progresso 100
// e carimba a data de conclusão.
type UpdateTaskRequest struct {
	Titulo        *string   `json:"titulo"`
	Descricao     *string   `json:"descricao"`
	Status        *string   `json:"status" validate:"omitempty,oneof=pendente em_andamento concluida cancelada"`
	Prioridade    *string   `json:"prioridade" validate:"omitempty,oneof=baixa media alta urgente"`
	Categoria     *string   `json:"categoria" validate:"omitempty,oneof=comercial financeiro trabalhista fiscal contabil atendimento"`
	ResponsavelID *string   `json:"responsavel_id"`
	DataPrazo     *string   `json:"data_prazo"`
	Progresso     *int      `json:"progresso" validate:"omitempty,min=0,max=100"`
	Tags          *[]string `json:"tags"`
	Arquivos      *[]string `json:"arquivos"`
}

// ComentarioRequest novo comentário na tarefa.
type ComentarioRequest struct {
	Comentario string `json:"comentario" validate:"required"`
}

// TaskResponse tarefa completa com comentários.
type TaskResponse struct {
	ID              string               `json:"id"`
	Titulo          string               `json:"titulo"`
	Descricao       string               `json:"descricao,omitempty"`
	Status          string               `json:"status"`
	Prioridade      string               `json:"prioridade"`
	Categoria       string               `json:"categoria"`
	ResponsavelID   string               `json:"responsavel_id"`
	ResponsavelNome string               `json:"responsavel_nome"`
	CriadorID       string               `json:"criador_id"`
	CriadorNome     string               `json:"criador_nome"`
	DataCriacao     time.Time            `json:"data_criacao"`
	DataPrazo       string               `json:"data_prazo,omitempty"`
	DataConclusao   string               `json:"data_conclusao,omitempty"`
	Progresso       int                  `json:"progresso"`
	Comentarios     []entity.TaskComment `json:"comentarios"`
	Tags            []string             `json:"tags"`
	Arquivos        []string             `json:"arquivos"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// TaskListResponse envelope de listagem de tarefas.
type TaskListResponse struct {
	Tasks []*TaskResponse `json:"tasks"`
	Total int64           `json:"total"`
	Skip  int             `json:"skip"`
	Limit int             `json:"limit"`
}

// TaskStatsResponse painel de tarefas restrito ao escopo de posse do usuário.
type TaskStatsResponse struct {
	PorStatus     map[string]int64 `json:"por_status"`
	PorPrioridade map[string]int64 `json:"por_prioridade"`
	PorCategoria  map[string]int64 `json:"por_categoria"`
}
