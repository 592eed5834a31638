// Package usecase implementa os casos de uso dos módulos de negócio.
// Toda operação recebe o usuário autenticado (actor) e aplica as regras
// de acesso ANTES de tocar o repositório; listagens recortam por escopo
// na própria consulta, nunca filtrando depois.
package usecase

// Tetos de paginação por entidade.
const (
	defaultLimit = 100
	maxClients   = 1000
	maxRegistros = 500

	defaultLimitLeve = 50
	maxLeve          = 100
)

// clampPage normaliza skip/limit: skip nunca negativo, limit dentro de
// (0, max], com o padrão quando ausente.
func clampPage(skip, limit, def, max int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	return skip, limit
}
