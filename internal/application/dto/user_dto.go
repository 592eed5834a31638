package dto

import "time"

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido + usuário resolvido.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// CreateUserRequest cadastro de usuário (somente admin; senha em claro,
// hash acontece no caso de uso).
type CreateUserRequest struct {
	Email          string   `json:"email" validate:"required,email"`
	Name           string   `json:"name" validate:"required,max=200"`
	Password       string   `json:"password" validate:"required,min=8"`
	Role           string   `json:"role" validate:"required,oneof=admin colaborador"`
	AllowedCities  []string `json:"allowed_cities"`
	AllowedSectors []string `json:"allowed_sectors" validate:"dive,oneof=comercial financeiro trabalhista fiscal contabil atendimento"`
}

// UpdateUserRequest atualização parcial (somente admin): apenas os
// campos presentes são alterados.
type UpdateUserRequest struct {
	Name           *string   `json:"name" validate:"omitempty,max=200"`
	Role           *string   `json:"role" validate:"omitempty,oneof=admin colaborador"`
	AllowedCities  *[]string `json:"allowed_cities"`
	AllowedSectors *[]string `json:"allowed_sectors" validate:"omitempty,dive,oneof=comercial financeiro trabalhista fiscal contabil atendimento"`
	IsActive       *bool     `json:"is_active"`
}

// UserResponse usuário sem credenciais.
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	AllowedCities  []string  `json:"allowed_cities"`
	AllowedSectors []string  `json:"allowed_sectors"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
