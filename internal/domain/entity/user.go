package entity

import "time"

// Papéis válidos para User.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleColaborador Role = "colaborador"
)

// Valid informa se o papel pertence ao domínio fechado.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleColaborador
}

// RoleValues devolve os valores aceitos (para mensagens de validação).
func RoleValues() []string { return []string{string(RoleAdmin), string(RoleColaborador)} }

// User representa um usuário interno do escritório.
// Admin tem implicitamente todas as cidades e setores; colaborador fica
// restrito às listas explícitas. Usuários nunca são removidos: desativação
// via IsActive.
type User struct {
	ID             string
	Email          string
	Name           string
	PasswordHash   string // bcrypt, nunca em claro depois de persistir
	Role           Role
	AllowedCities  []string
	AllowedSectors []Setor
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
