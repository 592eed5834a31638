package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	casos := []struct {
		nome          string
		skip, limit   int
		def, max      int
		wSkip, wLimit int
	}{
		{"padrão quando ausente", 0, 0, defaultLimit, maxRegistros, 0, defaultLimit},
		{"skip negativo vira zero", -10, 20, defaultLimit, maxRegistros, 0, 20},
		{"limit acima do teto é cortado", 0, 9999, defaultLimit, maxRegistros, 0, maxRegistros},
		{"limit negativo recebe o padrão", 5, -1, defaultLimitLeve, maxLeve, 5, defaultLimitLeve},
		{"dentro dos limites passa intacto", 100, 50, defaultLimit, maxClients, 100, 50},
	}
	for _, c := range casos {
		skip, limit := clampPage(c.skip, c.limit, c.def, c.max)
		assert.Equal(t, c.wSkip, skip, c.nome)
		assert.Equal(t, c.wLimit, limit, c.nome)
	}
}
