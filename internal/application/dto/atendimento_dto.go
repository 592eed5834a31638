package dto

import (
	"time"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// CreateTicketRequest abertura de chamado; SLA é calculado na criação.
type CreateTicketRequest struct {
	EmpresaID   string   `json:"empresa_id" validate:"required"`
	Empresa     string   `json:"empresa" validate:"required"`
	Titulo      string   `json:"titulo" validate:"required"`
	Descricao   string   `json:"descricao" validate:"required"`
	Prioridade  string   `json:"prioridade" validate:"required,oneof=baixa media alta urgente"`
	Responsavel string   `json:"responsavel"`
	Canal       string   `json:"canal" validate:"required,oneof=telefone email whatsapp chat presencial"`
	Arquivos    []string `json:"arquivos"`
}

// UpdateTicketRequest atualização parcial do chamado.
type UpdateTicketRequest struct {
	Titulo      *string   `json:"titulo"`
	Descricao   *string   `json:"descricao"`
	Prioridade  *string   `json:"prioridade" validate:"omitempty,oneof=baixa media alta urgente"`
	Status      *string   `json:"status" validate:"omitempty,oneof=aberto em_andamento resolvido fechado aguardando_cliente"`
	Responsavel *string   `json:"responsavel"`
	Arquivos    *[]string `json:"arquivos"`
}

// ConversaRequest nova entrada da conversa do chamado.
type ConversaRequest struct {
	Mensagem string `json:"mensagem" validate:"required"`
}

// TicketResponse chamado completo com a conversa.
type TicketResponse struct {
	ID           string            `json:"id"`
	EmpresaID    string            `json:"empresa_id"`
	Empresa      string            `json:"empresa"`
	Titulo       string            `json:"titulo"`
	Descricao    string            `json:"descricao"`
	Prioridade   string            `json:"prioridade"`
	Status       string            `json:"status"`
	Responsavel  string            `json:"responsavel,omitempty"`
	Canal        string            `json:"canal"`
	DataAbertura time.Time         `json:"data_abertura"`
	SLA          time.Time         `json:"sla"`
	Conversas    []entity.Conversa `json:"conversas"`
	Arquivos     []string          `json:"arquivos"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// TicketListResponse envelope de listagem de chamados.
type TicketListResponse struct {
	Tickets []*TicketResponse `json:"tickets"`
	Total   int64             `json:"total"`
	Skip    int               `json:"skip"`
	Limit   int               `json:"limit"`
}
