package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/access"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

// ConfiguracaoUseCase casos de uso de configurações por setor.
// Leitura exige o setor no escopo do usuário; escrita segue a mesma regra.
type ConfiguracaoUseCase struct {
	configs repository.ConfiguracaoRepository
	log     *logger.Logger
}

// NewConfiguracaoUseCase cria o caso de uso de configurações.
func NewConfiguracaoUseCase(configs repository.ConfiguracaoRepository, log *logger.Logger) *ConfiguracaoUseCase {
	return &ConfiguracaoUseCase{configs: configs, log: log}
}

// Create cria uma configuração de setor.
func (uc *ConfiguracaoUseCase) Create(ctx context.Context, actor *entity.User, req dto.CreateConfiguracaoRequest) (*dto.ConfiguracaoResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if !access.SectorAllowed(actor, entity.Setor(req.Setor)) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	c := &entity.Configuracao{
		ID:            uuid.NewString(),
		Setor:         entity.Setor(req.Setor),
		Nome:          req.Nome,
		Configuracoes: req.Configuracoes,
		UpdatedBy:     actor.Name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.configs.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.log.Info().Str("config_id", c.ID).Str("setor", req.Setor).Msg("configuração criada")
	return toConfiguracaoResponse(c), nil
}

// Get devolve uma configuração; setor fora do escopo responde como proibido.
func (uc *ConfiguracaoUseCase) Get(ctx context.Context, actor *entity.User, id string) (*dto.ConfiguracaoResponse, error) {
	c, err := uc.configs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.SectorAllowed(actor, c.Setor) {
		return nil, domain.ErrForbidden
	}
	return toConfiguracaoResponse(c), nil
}

// ListConfiguracoesQuery filtros de listagem vindos da rota.
type ListConfiguracoesQuery struct {
	Setor  string
	Search string
	Skip   int
	Limit  int
}

// List lista configurações; o escopo de setor do colaborador entra na
// própria consulta, e o total conta só o que ele enxerga.
func (uc *ConfiguracaoUseCase) List(ctx context.Context, actor *entity.User, q ListConfiguracoesQuery) (*dto.ConfiguracaoListResponse, error) {
	skip, limit := clampPage(q.Skip, q.Limit, defaultLimit, maxRegistros)
	f := repository.ConfiguracaoFilter{
		Setores: access.SectorScope(actor),
		Setor:   q.Setor,
		Search:  q.Search,
		Skip:    skip,
		Limit:   limit,
	}

	configs, err := uc.configs.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := uc.configs.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ConfiguracaoResponse, len(configs))
	for i, c := range configs {
		out[i] = toConfiguracaoResponse(c)
	}
	return &dto.ConfiguracaoListResponse{Configuracoes: out, Total: total, Skip: skip, Limit: limit}, nil
}

// Update atualização parcial; as chaves enviadas são mescladas sobre as
// existentes, sem apagar as demais.
func (uc *ConfiguracaoUseCase) Update(ctx context.Context, actor *entity.User, id string, req dto.UpdateConfiguracaoRequest) (*dto.ConfiguracaoResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	c, err := uc.configs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.SectorAllowed(actor, c.Setor) {
		return nil, domain.ErrForbidden
	}

	if req.Nome != nil {
		c.Nome = *req.Nome
	}
	if req.Configuracoes != nil {
		if c.Configuracoes == nil {
			c.Configuracoes = entity.Valores{}
		}
		for k, v := range req.Configuracoes {
			c.Configuracoes[k] = v
		}
	}
	c.UpdatedBy = actor.Name
	c.UpdatedAt = time.Now().UTC()

	if err := uc.configs.Update(ctx, c); err != nil {
		return nil, err
	}
	return toConfiguracaoResponse(c), nil
}

func toConfiguracaoResponse(c *entity.Configuracao) *dto.ConfiguracaoResponse {
	valores := c.Configuracoes
	if valores == nil {
		valores = entity.Valores{}
	}
	return &dto.ConfiguracaoResponse{
		ID:            c.ID,
		Setor:         string(c.Setor),
		Nome:          c.Nome,
		Configuracoes: valores,
		UpdatedBy:     c.UpdatedBy,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
