package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSLADoDia(t *testing.T) {
	casos := []struct {
		nome     string
		abertura time.Time
		esperado time.Time
	}{
		{
			nome:     "meio do dia",
			abertura: time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
			esperado: time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC),
		},
		{
			nome:     "primeiro segundo do dia",
			abertura: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			esperado: time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC),
		},
		{
			nome:     "quase meia-noite continua no mesmo dia",
			abertura: time.Date(2025, 12, 31, 23, 59, 58, 0, time.UTC),
			esperado: time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			nome:     "fuso local é normalizado para UTC",
			abertura: time.Date(2025, 6, 1, 22, 0, 0, 0, time.FixedZone("BRT", -3*3600)),
			esperado: time.Date(2025, 6, 2, 23, 59, 59, 0, time.UTC),
		},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, SLADoDia(c.abertura), c.nome)
	}
}
