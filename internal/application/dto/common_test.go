package dto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macedocontabil/macedo-si-api/internal/domain"
)

func TestValidate_EnumInvalido(t *testing.T) {
	req := CreateTicketRequest{
		EmpresaID:  "emp-1",
		Empresa:    "Padaria Central",
		Titulo:     "Sem acesso ao sistema",
		Descricao:  "Cliente não consegue entrar",
		Prioridade: "altíssima",
		Canal:      "telefone",
	}

	err := Validate(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// A violação nomeia o campo como no JSON e lista os valores aceitos.
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "prioridade", ve.Field)
	assert.Equal(t, []string{"baixa", "media", "alta", "urgente"}, ve.Allowed)
}

func TestValidate_ObrigatorioAusente(t *testing.T) {
	err := Validate(CreateTicketRequest{
		Empresa:    "Padaria Central",
		Titulo:     "Sem acesso",
		Descricao:  "detalhe",
		Prioridade: "alta",
		Canal:      "email",
	})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "empresa_id", ve.Field)
	assert.Empty(t, ve.Allowed)
}

func TestValidate_RequisicaoValida(t *testing.T) {
	err := Validate(CreateTicketRequest{
		EmpresaID:  "emp-1",
		Empresa:    "Padaria Central",
		Titulo:     "Sem acesso",
		Descricao:  "detalhe",
		Prioridade: "urgente",
		Canal:      "whatsapp",
	})
	assert.NoError(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("data_vencimento", "2025-07-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-15", FormatDate(d))

	_, err = ParseDate("data_vencimento", "15/07/2025")
	require.Error(t, err)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "data_vencimento", ve.Field)
}
