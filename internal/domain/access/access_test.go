package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macedocontabil/macedo-si-api/internal/domain/access"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

func colaborador(cidades []string, setores []entity.Setor) *entity.User {
	return &entity.User{
		ID:             "u-colab",
		Role:           entity.RoleColaborador,
		AllowedCities:  cidades,
		AllowedSectors: setores,
	}
}

var admin = &entity.User{ID: "u-admin", Role: entity.RoleAdmin}

func TestSectorAllowed(t *testing.T) {
	tests := []struct {
		name  string
		user  *entity.User
		setor entity.Setor
		want  bool
	}{
		{"admin acessa qualquer setor", admin, entity.SetorFinanceiro, true},
		{"colaborador com o setor", colaborador(nil, []entity.Setor{entity.SetorFiscal, entity.SetorContabil}), entity.SetorFiscal, true},
		{"colaborador sem o setor", colaborador(nil, []entity.Setor{entity.SetorFiscal, entity.SetorContabil}), entity.SetorFinanceiro, false},
		{"colaborador sem setores", colaborador(nil, nil), entity.SetorAtendimento, false},
		{"usuário nulo", nil, entity.SetorFiscal, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, access.SectorAllowed(tt.user, tt.setor))
		})
	}
}

func TestCityAllowed(t *testing.T) {
	tests := []struct {
		name   string
		user   *entity.User
		cidade string
		want   bool
	}{
		{"admin acessa qualquer cidade", admin, "ourolandia", true},
		{"colaborador com a cidade", colaborador([]string{"jacobina"}, nil), "jacobina", true},
		{"colaborador sem a cidade", colaborador([]string{"jacobina"}, nil), "ourolandia", false},
		{"colaborador sem cidades", colaborador(nil, nil), "jacobina", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, access.CityAllowed(tt.user, tt.cidade))
		})
	}
}

func TestOwnerAllowed(t *testing.T) {
	u := colaborador(nil, nil)

	assert.True(t, access.OwnerAllowed(admin, "x", "y"), "admin sempre acessa")
	assert.True(t, access.OwnerAllowed(u, u.ID, "outro"), "criador acessa")
	assert.True(t, access.OwnerAllowed(u, "outro", u.ID), "responsável acessa")
	assert.False(t, access.OwnerAllowed(u, "outro", "outro"), "terceiro não acessa")
}

func TestCityScope(t *testing.T) {
	assert.Nil(t, access.CityScope(admin), "admin lista sem restrição")

	scope := access.CityScope(colaborador([]string{"jacobina", "mirangaba"}, nil))
	assert.Equal(t, []string{"jacobina", "mirangaba"}, scope)

	vazio := access.CityScope(colaborador(nil, nil))
	assert.NotNil(t, vazio, "colaborador sem cidades recebe escopo vazio, não irrestrito")
	assert.Empty(t, vazio)
}

func TestSectorScope(t *testing.T) {
	assert.Nil(t, access.SectorScope(admin), "admin lista sem restrição")

	scope := access.SectorScope(colaborador(nil, []entity.Setor{entity.SetorFiscal, entity.SetorContabil}))
	assert.Equal(t, []string{"fiscal", "contabil"}, scope)

	vazio := access.SectorScope(colaborador(nil, nil))
	assert.NotNil(t, vazio, "colaborador sem setores recebe escopo vazio, não irrestrito")
	assert.Empty(t, vazio)
}
