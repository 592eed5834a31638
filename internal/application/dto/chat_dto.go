package dto

import (
	"time"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// CreateChatRequest criação de sala; quem cria vira admin e participante.
type CreateChatRequest struct {
	Nome          string   `json:"nome" validate:"required"`
	Descricao     string   `json:"descricao"`
	Tipo          string   `json:"tipo" validate:"required,oneof=grupo privado suporte"`
	Participantes []string `json:"participantes"`
}

// MensagemRequest nova mensagem na sala.
type MensagemRequest struct {
	Mensagem   string `json:"mensagem" validate:"required"`
	Tipo       string `json:"tipo" validate:"omitempty,oneof=text file image system"`
	ArquivoURL string `json:"arquivo_url"`
}

// ChatResponse sala completa com mensagens.
type ChatResponse struct {
	ID            string            `json:"id"`
	Nome          string            `json:"nome"`
	Descricao     string            `json:"descricao,omitempty"`
	Tipo          string            `json:"tipo"`
	Participantes []string          `json:"participantes"`
	AdminID       string            `json:"admin_id"`
	Mensagens     []entity.Mensagem `json:"mensagens"`
	Ativo         bool              `json:"ativo"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// MensagemListResponse envelope de listagem de mensagens de uma sala,
// mais recentes primeiro.
type MensagemListResponse struct {
	Mensagens []entity.Mensagem `json:"mensagens"`
	Total     int64             `json:"total"`
	Skip      int               `json:"skip"`
	Limit     int               `json:"limit"`
}

// ChatListResponse envelope de listagem de salas (sem as mensagens).
type ChatListResponse struct {
	Chats []*ChatResponse `json:"chats"`
	Total int64           `json:"total"`
	Skip  int             `json:"skip"`
	Limit int             `json:"limit"`
}
