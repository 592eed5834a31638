package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldSearch(t *testing.T) {
	casos := map[string]string{
		"São Paulo":    "%sao paulo%",
		"JACOBINA":     "%jacobina%",
		"Contábil":     "%contabil%",
		"honorário":    "%honorario%",
		"sem acento":   "%sem acento%",
		"Ação Urgente": "%acao urgente%",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, foldSearch(entrada), "entrada %q", entrada)
	}
}
