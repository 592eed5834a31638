package dto

import (
	"time"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// CreateClientRequest cadastro de cliente.
type CreateClientRequest struct {
	NomeEmpresa  string          `json:"nome_empresa" validate:"required"`
	NomeFantasia string          `json:"nome_fantasia" validate:"required"`
	Status       string          `json:"status" validate:"omitempty,oneof=ativa inativa suspensa"`
	Cidade       string          `json:"cidade" validate:"required"`
	Telefone     string          `json:"telefone" validate:"required"`
	Whatsapp     string          `json:"whatsapp" validate:"required"`
	Email        string          `json:"email" validate:"required,email"`
	Responsavel  string          `json:"responsavel" validate:"required"`
	CNPJ         string          `json:"cnpj" validate:"required"`
	FormaEnvio   string          `json:"forma_envio" validate:"required,oneof=whatsapp email impresso"`
	CodigoIOB    string          `json:"codigo_iob" validate:"required"`
	NovoCliente  bool            `json:"novo_cliente"`
	TipoEmpresa  string          `json:"tipo_empresa" validate:"required,oneof=matriz filial"`
	Endereco     entity.Endereco `json:"endereco" validate:"required"`
	TipoRegime   string          `json:"tipo_regime" validate:"required,oneof=simples lucro_presumido lucro_real mei"`
	EmpresaGrupo string          `json:"empresa_grupo"`
}

// UpdateClientRequest atualização parcial de cliente.
type UpdateClientRequest struct {
	NomeEmpresa  *string          `json:"nome_empresa"`
	NomeFantasia *string          `json:"nome_fantasia"`
	Status       *string          `json:"status" validate:"omitempty,oneof=ativa inativa suspensa"`
	Cidade       *string          `json:"cidade"`
	Telefone     *string          `json:"telefone"`
	Whatsapp     *string          `json:"whatsapp"`
	Email        *string          `json:"email" validate:"omitempty,email"`
	Responsavel  *string          `json:"responsavel"`
	CNPJ         *string          `json:"cnpj"`
	FormaEnvio   *string          `json:"forma_envio" validate:"omitempty,oneof=whatsapp email impresso"`
	CodigoIOB    *string          `json:"codigo_iob"`
	NovoCliente  *bool            `json:"novo_cliente"`
	TipoEmpresa  *string          `json:"tipo_empresa" validate:"omitempty,oneof=matriz filial"`
	Endereco     *entity.Endereco `json:"endereco"`
	TipoRegime   *string          `json:"tipo_regime" validate:"omitempty,oneof=simples lucro_presumido lucro_real mei"`
	EmpresaGrupo *string          `json:"empresa_grupo"`
}

// ClientResponse cliente completo.
type ClientResponse struct {
	ID           string          `json:"id"`
	NomeEmpresa  string          `json:"nome_empresa"`
	NomeFantasia string          `json:"nome_fantasia"`
	Status       string          `json:"status"`
	Cidade       string          `json:"cidade"`
	Telefone     string          `json:"telefone"`
	Whatsapp     string          `json:"whatsapp"`
	Email        string          `json:"email"`
	Responsavel  string          `json:"responsavel"`
	CNPJ         string          `json:"cnpj"`
	FormaEnvio   string          `json:"forma_envio"`
	CodigoIOB    string          `json:"codigo_iob"`
	NovoCliente  bool            `json:"novo_cliente"`
	TipoEmpresa  string          `json:"tipo_empresa"`
	Endereco     entity.Endereco `json:"endereco"`
	TipoRegime   string          `json:"tipo_regime"`
	EmpresaGrupo string          `json:"empresa_grupo,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ClientListResponse envelope de listagem com total para paginação.
type ClientListResponse struct {
	Clients []*ClientResponse `json:"clients"`
	Total   int64             `json:"total"`
	Skip    int               `json:"skip"`
	Limit   int               `json:"limit"`
}
