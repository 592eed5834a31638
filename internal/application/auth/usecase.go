// Package auth implementa autenticação e gestão de usuários.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
	"github.com/macedocontabil/macedo-si-api/pkg/jwt"
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

// TokenConfig parâmetros de emissão de token.
type TokenConfig struct {
	Secret     string
	Issuer     string
	Expiration int // minutos
}

// UseCase casos de uso de autenticação e usuários.
type UseCase struct {
	users repository.UserRepository
	token TokenConfig
	log   *logger.Logger
}

// NewUseCase cria o caso de uso de autenticação.
func NewUseCase(users repository.UserRepository, token TokenConfig, log *logger.Logger) *UseCase {
	return &UseCase{users: users, token: token, log: log}
}

// Login valida credenciais e emite um token JWT.
// Credencial inválida e usuário inexistente respondem com o mesmo erro.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	user, err := uc.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}

	token, err := jwt.Generate(uc.token.Secret, user.ID, string(user.Role), uc.token.Issuer, uc.token.Expiration)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Msg("login realizado")

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *toUserResponse(user),
	}, nil
}

// Register cria um usuário; somente admin.
func (uc *UseCase) Register(ctx context.Context, actor *entity.User, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if actor == nil || actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:             uuid.NewString(),
		Email:          req.Email,
		Name:           req.Name,
		PasswordHash:   string(hash),
		Role:           entity.Role(req.Role),
		AllowedCities:  req.AllowedCities,
		AllowedSectors: toSetores(req.AllowedSectors),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Str("role", req.Role).Msg("usuário criado")
	return toUserResponse(user), nil
}

// Me devolve o usuário autenticado.
func (uc *UseCase) Me(actor *entity.User) *dto.UserResponse {
	return toUserResponse(actor)
}

// ListUsers lista todos os usuários; somente admin.
func (uc *UseCase) ListUsers(ctx context.Context, actor *entity.User) ([]*dto.UserResponse, error) {
	if actor == nil || actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out, nil
}

// GetUser devolve um usuário por id; somente admin.
func (uc *UseCase) GetUser(ctx context.Context, actor *entity.User, id string) (*dto.UserResponse, error) {
	if actor == nil || actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// UpdateUser atualização parcial de um usuário; somente admin.
// Não há remoção de usuários: desativação via is_active.
func (uc *UseCase) UpdateUser(ctx context.Context, actor *entity.User, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if actor == nil || actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = entity.Role(*req.Role)
	}
	if req.AllowedCities != nil {
		user.AllowedCities = *req.AllowedCities
	}
	if req.AllowedSectors != nil {
		user.AllowedSectors = toSetores(*req.AllowedSectors)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toSetores(in []string) []entity.Setor {
	if in == nil {
		return nil
	}
	out := make([]entity.Setor, len(in))
	for i, s := range in {
		out[i] = entity.Setor(s)
	}
	return out
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	sectors := make([]string, len(u.AllowedSectors))
	for i, s := range u.AllowedSectors {
		sectors[i] = string(s)
	}
	cities := u.AllowedCities
	if cities == nil {
		cities = []string{}
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           string(u.Role),
		AllowedCities:  cities,
		AllowedSectors: sectors,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
