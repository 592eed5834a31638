package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

func TestValorConfig_RoundTrip(t *testing.T) {
	original := entity.Valores{
		"prazo_padrao_dias": entity.Numero(5),
		"notificar_email":   entity.Booleano(true),
		"template_aviso":    entity.Texto("Prezado cliente, ..."),
		"feriados":          entity.Lista(entity.Texto("2025-12-25"), entity.Texto("2026-01-01")),
		"limites": entity.Mapa(map[string]entity.ValorConfig{
			"maximo": entity.Numero(100),
		}),
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded entity.Valores
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, entity.TipoNumero, decoded["prazo_padrao_dias"].Tipo)
	assert.Equal(t, 5.0, decoded["prazo_padrao_dias"].Numero)
	assert.Equal(t, entity.TipoBooleano, decoded["notificar_email"].Tipo)
	assert.True(t, decoded["notificar_email"].Booleano)
	assert.Equal(t, "Prezado cliente, ...", decoded["template_aviso"].Texto)
	require.Len(t, decoded["feriados"].Lista, 2)
	assert.Equal(t, "2025-12-25", decoded["feriados"].Lista[0].Texto)
	require.NotNil(t, decoded["limites"].Mapa)
	assert.Equal(t, 100.0, decoded["limites"].Mapa["maximo"].Numero)
}

func TestValorConfig_RejeitaNull(t *testing.T) {
	var v entity.ValorConfig
	err := json.Unmarshal([]byte(`null`), &v)
	assert.Error(t, err, "null não pertence ao conjunto fechado de tipos")
}

func TestValorConfig_ListaVaziaSerializaComoLista(t *testing.T) {
	raw, err := json.Marshal(entity.Lista())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
