package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func testUseCase(t *testing.T) (*UseCase, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := NewUseCase(repo, TokenConfig{Secret: "segredo-de-teste", Issuer: "macedo-si", Expiration: 60}, log)
	return uc, repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, senha string, role entity.Role, ativo bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           "user-" + email,
		Email:        email,
		Name:         "Usuário " + email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     ativo,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestLogin(t *testing.T) {
	uc, repo := testUseCase(t)
	seedUser(t, repo, "ana@macedo.com", "senha-forte", entity.RoleAdmin, true)

	t.Run("credenciais corretas emitem token", func(t *testing.T) {
		resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@macedo.com", Password: "senha-forte"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, "admin", resp.User.Role)
	})

	t.Run("senha errada", func(t *testing.T) {
		_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@macedo.com", Password: "errada"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("email inexistente responde igual a senha errada", func(t *testing.T) {
		_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ninguem@macedo.com", Password: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("usuário inativo não entra", func(t *testing.T) {
		seedUser(t, repo, "inativo@macedo.com", "senha-forte", entity.RoleColaborador, false)
		_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "inativo@macedo.com", Password: "senha-forte"})
		assert.ErrorIs(t, err, domain.ErrInactiveUser)
	})
}

func TestRegister(t *testing.T) {
	uc, _ := testUseCase(t)
	admin := &entity.User{ID: "adm", Role: entity.RoleAdmin}
	colab := &entity.User{ID: "col", Role: entity.RoleColaborador}

	req := dto.CreateUserRequest{
		Email:          "novo@macedo.com",
		Name:           "Novo Colaborador",
		Password:       "senha-nova-123",
		Role:           "colaborador",
		AllowedCities:  []string{"jacobina"},
		AllowedSectors: []string{"fiscal", "contabil"},
	}

	t.Run("colaborador não registra", func(t *testing.T) {
		_, err := uc.Register(context.Background(), colab, req)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("admin registra", func(t *testing.T) {
		resp, err := uc.Register(context.Background(), admin, req)
		require.NoError(t, err)
		assert.Equal(t, "colaborador", resp.Role)
		assert.Equal(t, []string{"jacobina"}, resp.AllowedCities)
		assert.True(t, resp.IsActive)
	})

	t.Run("email duplicado", func(t *testing.T) {
		_, err := uc.Register(context.Background(), admin, req)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("papel inválido vira erro de validação", func(t *testing.T) {
		bad := req
		bad.Email = "outro@macedo.com"
		bad.Role = "gerente"
		_, err := uc.Register(context.Background(), admin, bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUpdateUser(t *testing.T) {
	uc, repo := testUseCase(t)
	admin := &entity.User{ID: "adm", Role: entity.RoleAdmin}
	alvo := seedUser(t, repo, "alvo@macedo.com", "senha-forte", entity.RoleColaborador, true)

	inativo := false
	cidades := []string{"ourolandia"}
	resp, err := uc.UpdateUser(context.Background(), admin, alvo.ID, dto.UpdateUserRequest{
		IsActive:      &inativo,
		AllowedCities: &cidades,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.Equal(t, []string{"ourolandia"}, resp.AllowedCities)
	assert.Equal(t, "colaborador", resp.Role)

	_, err = uc.UpdateUser(context.Background(), &entity.User{ID: "x", Role: entity.RoleColaborador}, alvo.ID, dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
