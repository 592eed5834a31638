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

// ClientUseCase casos de uso do cadastro de clientes.
type ClientUseCase struct {
	clients repository.ClientRepository
	log     *logger.Logger
}

// NewClientUseCase cria o caso de uso de clientes.
func NewClientUseCase(clients repository.ClientRepository, log *logger.Logger) *ClientUseCase {
	return &ClientUseCase{clients: clients, log: log}
}

// Create cadastra um cliente na cidade informada; a cidade precisa
// estar no escopo do usuário.
func (uc *ClientUseCase) Create(ctx context.Context, actor *entity.User, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if !access.CityAllowed(actor, req.Cidade) {
		return nil, domain.ErrForbidden
	}

	status := entity.StatusCliente(req.Status)
	if req.Status == "" {
		status = entity.ClienteAtiva
	}

	now := time.Now().UTC()
	client := &entity.Client{
		ID:           uuid.NewString(),
		NomeEmpresa:  req.NomeEmpresa,
		NomeFantasia: req.NomeFantasia,
		Status:       status,
		Cidade:       req.Cidade,
		Telefone:     req.Telefone,
		Whatsapp:     req.Whatsapp,
		Email:        req.Email,
		Responsavel:  req.Responsavel,
		CNPJ:         req.CNPJ,
		FormaEnvio:   entity.FormaEnvio(req.FormaEnvio),
		CodigoIOB:    req.CodigoIOB,
		NovoCliente:  req.NovoCliente,
		TipoEmpresa:  entity.TipoEmpresa(req.TipoEmpresa),
		Endereco:     req.Endereco,
		TipoRegime:   entity.TipoRegime(req.TipoRegime),
		EmpresaGrupo: req.EmpresaGrupo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.clients.Create(ctx, client); err != nil {
		return nil, err
	}

	uc.log.Info().Str("client_id", client.ID).Str("cidade", client.Cidade).Msg("cliente cadastrado")
	return toClientResponse(client), nil
}

// Get devolve um cliente; cidade fora do escopo responde como proibido.
func (uc *ClientUseCase) Get(ctx context.Context, actor *entity.User, id string) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CityAllowed(actor, client.Cidade) {
		return nil, domain.ErrForbidden
	}
	return toClientResponse(client), nil
}

// GetByCNPJ busca um cliente pelo CNPJ exato.
func (uc *ClientUseCase) GetByCNPJ(ctx context.Context, actor *entity.User, cnpj string) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByCNPJ(ctx, cnpj)
	if err != nil {
		return nil, err
	}
	if !access.CityAllowed(actor, client.Cidade) {
		return nil, domain.ErrForbidden
	}
	return toClientResponse(client), nil
}

// ListClientsQuery filtros de listagem vindos da rota.
type ListClientsQuery struct {
	Cidade string
	Status string
	Search string
	Skip   int
	Limit  int
}

// List lista clientes recortados pelo escopo de cidades do usuário.
func (uc *ClientUseCase) List(ctx context.Context, actor *entity.User, q ListClientsQuery) (*dto.ClientListResponse, error) {
	skip, limit := clampPage(q.Skip, q.Limit, defaultLimit, maxClients)
	f := repository.ClientFilter{
		Cidades: access.CityScope(actor),
		Cidade:  q.Cidade,
		Status:  q.Status,
		Search:  q.Search,
		Skip:    skip,
		Limit:   limit,
	}

	clients, err := uc.clients.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := uc.clients.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = toClientResponse(c)
	}
	return &dto.ClientListResponse{Clients: out, Total: total, Skip: skip, Limit: limit}, nil
}

// Update atualização parcial; a cidade atual e a nova (se houver)
// precisam estar no escopo do usuário.
func (uc *ClientUseCase) Update(ctx context.Context, actor *entity.User, id string, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CityAllowed(actor, client.Cidade) {
		return nil, domain.ErrForbidden
	}
	if req.Cidade != nil && !access.CityAllowed(actor, *req.Cidade) {
		return nil, domain.ErrForbidden
	}

	applyClientUpdate(client, req)
	client.UpdatedAt = time.Now().UTC()

	if err := uc.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete remove um cliente; somente admin.
func (uc *ClientUseCase) Delete(ctx context.Context, actor *entity.User, id string) error {
	if actor == nil || actor.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if _, err := uc.clients.GetByID(ctx, id); err != nil {
		return err
	}
	if err := uc.clients.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Warn().Str("client_id", id).Str("user_id", actor.ID).Msg("cliente removido")
	return nil
}

func applyClientUpdate(c *entity.Client, req dto.UpdateClientRequest) {
	if req.NomeEmpresa != nil {
		c.NomeEmpresa = *req.NomeEmpresa
	}
	if req.NomeFantasia != nil {
		c.NomeFantasia = *req.NomeFantasia
	}
	if req.Status != nil {
		c.Status = entity.StatusCliente(*req.Status)
	}
	if req.Cidade != nil {
		c.Cidade = *req.Cidade
	}
	if req.Telefone != nil {
		c.Telefone = *req.Telefone
	}
	if req.Whatsapp != nil {
		c.Whatsapp = *req.Whatsapp
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Responsavel != nil {
		c.Responsavel = *req.Responsavel
	}
	if req.CNPJ != nil {
		c.CNPJ = *req.CNPJ
	}
	if req.FormaEnvio != nil {
		c.FormaEnvio = entity.FormaEnvio(*req.FormaEnvio)
	}
	if req.CodigoIOB != nil {
		c.CodigoIOB = *req.CodigoIOB
	}
	if req.NovoCliente != nil {
		c.NovoCliente = *req.NovoCliente
	}
	if req.TipoEmpresa != nil {
		c.TipoEmpresa = entity.TipoEmpresa(*req.TipoEmpresa)
	}
	if req.Endereco != nil {
		c.Endereco = *req.Endereco
	}
	if req.TipoRegime != nil {
		c.TipoRegime = entity.TipoRegime(*req.TipoRegime)
	}
	if req.EmpresaGrupo != nil {
		c.EmpresaGrupo = *req.EmpresaGrupo
	}
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:           c.ID,
		NomeEmpresa:  c.NomeEmpresa,
		NomeFantasia: c.NomeFantasia,
		Status:       string(c.Status),
		Cidade:       c.Cidade,
		Telefone:     c.Telefone,
		Whatsapp:     c.Whatsapp,
		Email:        c.Email,
		Responsavel:  c.Responsavel,
		CNPJ:         c.CNPJ,
		FormaEnvio:   string(c.FormaEnvio),
		CodigoIOB:    c.CodigoIOB,
		NovoCliente:  c.NovoCliente,
		TipoEmpresa:  string(c.TipoEmpresa),
		Endereco:     c.Endereco,
		TipoRegime:   string(c.TipoRegime),
		EmpresaGrupo: c.EmpresaGrupo,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
