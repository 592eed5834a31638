// Package access concentra os predicados de autorização do sistema.
// Todos os módulos passam por aqui: nenhuma rota reimplementa a regra
// de admin nem consulta listas de cidades/setores por conta própria.
package access

import "github.com/macedocontabil/macedo-si-api/internal/domain/entity"

// SectorAllowed informa se o usuário pode operar o módulo do setor.
// Admin tem todos os setores implicitamente.
func SectorAllowed(u *entity.User, setor entity.Setor) bool {
	if u == nil {
		return false
	}
	if u.Role == entity.RoleAdmin {
		return true
	}
	for _, s := range u.AllowedSectors {
		if s == setor {
			return true
		}
	}
	return false
}

// CityAllowed informa se o usuário pode ler/alterar registros da cidade.
// Admin tem todas as cidades implicitamente.
func CityAllowed(u *entity.User, cidade string) bool {
	if u == nil {
		return false
	}
	if u.Role == entity.RoleAdmin {
		return true
	}
	for _, c := range u.AllowedCities {
		if c == cidade {
			return true
		}
	}
	return false
}

// OwnerAllowed informa se o usuário pode acessar um recurso de posse
// restrita (tarefas): admin, criador ou responsável.
func OwnerAllowed(u *entity.User, criadorID, responsavelID string) bool {
	if u == nil {
		return false
	}
	if u.Role == entity.RoleAdmin {
		return true
	}
	return u.ID == criadorID || u.ID == responsavelID
}

// SectorScope devolve a cláusula de escopo de setor para listagens:
// nil significa sem restrição (admin); lista vazia significa nenhum acesso.
// Como o escopo de cidade, a cláusula entra na consulta, nunca depois.
func SectorScope(u *entity.User) []string {
	if u == nil {
		return []string{}
	}
	if u.Role == entity.RoleAdmin {
		return nil
	}
	out := make([]string, 0, len(u.AllowedSectors))
	for _, s := range u.AllowedSectors {
		out = append(out, string(s))
	}
	return out
}

// CityScope devolve a cláusula de escopo de cidade para listagens:
// nil significa sem restrição (admin); lista vazia significa nenhum acesso.
// O adaptador de armazenamento aplica a cláusula ANTES de buscar, nunca
// filtrando depois.
func CityScope(u *entity.User) []string {
	if u == nil {
		return []string{}
	}
	if u.Role == entity.RoleAdmin {
		return nil
	}
	if u.AllowedCities == nil {
		return []string{}
	}
	return u.AllowedCities
}
