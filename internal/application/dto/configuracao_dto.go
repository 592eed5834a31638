package dto

import (
	"time"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// CreateConfiguracaoRequest criação de configuração de setor.
type CreateConfiguracaoRequest struct {
	Setor         string         `json:"setor" validate:"required,oneof=comercial financeiro trabalhista fiscal contabil atendimento"`
	Nome          string         `json:"nome" validate:"required"`
	Configuracoes entity.Valores `json:"configuracoes" validate:"required"`
}

// UpdateConfiguracaoRequest atualização parcial; chaves enviadas em
// configuracoes são mescladas sobre as existentes.
type UpdateConfiguracaoRequest struct {
	Nome          *string        `json:"nome"`
	Configuracoes entity.Valores `json:"configuracoes"`
}

// ConfiguracaoResponse configuração completa.
type ConfiguracaoResponse struct {
	ID            string         `json:"id"`
	Setor         string         `json:"setor"`
	Nome          string         `json:"nome"`
	Configuracoes entity.Valores `json:"configuracoes"`
	UpdatedBy     string         `json:"updated_by,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ConfiguracaoListResponse envelope de listagem de configurações.
type ConfiguracaoListResponse struct {
	Configuracoes []*ConfiguracaoResponse `json:"configuracoes"`
	Total         int64                   `json:"total"`
	Skip          int                     `json:"skip"`
	Limit         int                     `json:"limit"`
}
