package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidCredentials = errors.New("email ou senha incorretos")
	ErrUnauthorized       = errors.New("token inválido ou expirado")
	ErrForbidden          = errors.New("acesso negado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInactiveUser       = errors.New("usuário inativo")
)

// ValidationError descreve um campo enumerado ou obrigatório inválido,
// nomeando o campo e o conjunto de valores aceitos.
type ValidationError struct {
	Field   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("campo %q ausente ou inválido", e.Field)
	}
	return fmt.Sprintf("campo %q inválido; valores aceitos: %s", e.Field, strings.Join(e.Allowed, ", "))
}

// Is permite errors.Is(err, ErrInvalidInput) para qualquer ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError cria o erro para um campo com domínio fechado de valores.
func NewValidationError(field string, allowed ...string) *ValidationError {
	return &ValidationError{Field: field, Allowed: allowed}
}
