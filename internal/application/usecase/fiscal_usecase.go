package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/macedocontabil/macedo-si-api/internal/application/dto"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

// FiscalUseCase casos de uso de obrigações fiscais acessórias.
type FiscalUseCase struct {
	obrigacoes repository.FiscalRepository
	log        *logger.Logger
}

// NewFiscalUseCase cria o caso de uso fiscal.
func NewFiscalUseCase(obrigacoes repository.FiscalRepository, log *logger.Logger) *FiscalUseCase {
	return &FiscalUseCase{obrigacoes: obrigacoes, log: log}
}

// Create cadastra uma obrigação; nasce pendente.
func (uc *FiscalUseCase) Create(ctx context.Context, actor *entity.User, req dto.CreateObrigacaoRequest) (*dto.ObrigacaoResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	vencimento, err := dto.ParseDate("vencimento", req.Vencimento)
	if err != nil {
		return nil, err
	}

	responsavel := req.Responsavel
	if responsavel == "" {
		responsavel = actor.Name
	}

	now := time.Now().UTC()
	o := &entity.ObrigacaoFiscal{
		ID:            uuid.NewString(),
		EmpresaID:     req.EmpresaID,
		Empresa:       req.Empresa,
		Tipo:          entity.TipoObrigacao(req.Tipo),
		Nome:          req.Nome,
		Periodicidade: entity.Periodicidade(req.Periodicidade),
		Vencimento:    vencimento,
		Status:        entity.ObrigacaoPendente,
		Responsavel:   responsavel,
		Documentos:    req.Documentos,
		Observacoes:   req.Observacoes,
		Valor:         req.Valor,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.obrigacoes.Create(ctx, o); err != nil {
		return nil, err
	}

	uc.log.Info().Str("obrigacao_id", o.ID).Str("tipo", req.Tipo).Msg("obrigação fiscal cadastrada")
	return toObrigacaoResponse(o), nil
}

// Get devolve uma obrigação por id.
func (uc *FiscalUseCase) Get(ctx context.Context, id string) (*dto.ObrigacaoResponse, error) {
	o, err := uc.obrigacoes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toObrigacaoResponse(o), nil
}

// ListObrigacoesQuery filtros de listagem vindos da rota.
type ListObrigacoesQuery struct {
	Tipo   string
	Status string
	Search string
	Skip   int
	Limit  int
}

// List lista obrigações.
func (uc *FiscalUseCase) List(ctx context.Context, q ListObrigacoesQuery) (*dto.ObrigacaoListResponse, error) {
	skip, limit := clampPage(q.Skip, q.Limit, defaultLimit, maxRegistros)
	f := repository.FiscalFilter{
		Tipo:   q.Tipo,
		Status: q.Status,
		Search: q.Search,
		Skip:   skip,
		Limit:  limit,
	}

	obrigacoes, err := uc.obrigacoes.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := uc.obrigacoes.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ObrigacaoResponse, len(obrigacoes))
	for i, o := range obrigacoes {
		out[i] = toObrigacaoResponse(o)
	}
	return &dto.ObrigacaoListResponse{Obrigacoes: out, Total: total, Skip: skip, Limit: limit}, nil
}

// Update atualização parcial; marcar como entregue sem data de entrega
// carimba a data de hoje.
func (uc *FiscalUseCase) Update(ctx context.Context, id string, req dto.UpdateObrigacaoRequest) (*dto.ObrigacaoResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	o, err := uc.obrigacoes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		o.Nome = *req.Nome
	}
	if req.Periodicidade != nil {
		o.Periodicidade = entity.Periodicidade(*req.Periodicidade)
	}
	if req.Vencimento != nil {
		vencimento, err := dto.ParseDate("vencimento", *req.Vencimento)
		if err != nil {
			return nil, err
		}
		o.Vencimento = vencimento
	}
	if req.Status != nil {
		o.Status = entity.StatusObrigacao(*req.Status)
	}
	if req.Responsavel != nil {
		o.Responsavel = *req.Responsavel
	}
	if req.Documentos != nil {
		o.Documentos = *req.Documentos
	}
	if req.Observacoes != nil {
		o.Observacoes = *req.Observacoes
	}
	if req.Valor != nil {
		o.Valor = req.Valor
	}
	if req.DataEntrega != nil {
		entrega, err := dto.ParseDate("data_entrega", *req.DataEntrega)
		if err != nil {
			return nil, err
		}
		o.DataEntrega = &entrega
	}
	if o.Status == entity.ObrigacaoEntregue && o.DataEntrega == nil {
		hoje := time.Now().UTC()
		o.DataEntrega = &hoje
	}
	o.UpdatedAt = time.Now().UTC()

	if err := uc.obrigacoes.Update(ctx, o); err != nil {
		return nil, err
	}
	return toObrigacaoResponse(o), nil
}

// Delete remove uma obrigação.
func (uc *FiscalUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.obrigacoes.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.obrigacoes.Delete(ctx, id)
}

func toObrigacaoResponse(o *entity.ObrigacaoFiscal) *dto.ObrigacaoResponse {
	documentos := o.Documentos
	if documentos == nil {
		documentos = []string{}
	}
	return &dto.ObrigacaoResponse{
		ID:            o.ID,
		EmpresaID:     o.EmpresaID,
		Empresa:       o.Empresa,
		Tipo:          string(o.Tipo),
		Nome:          o.Nome,
		Periodicidade: string(o.Periodicidade),
		Vencimento:    dto.FormatDate(o.Vencimento),
		Status:        string(o.Status),
		Responsavel:   o.Responsavel,
		Documentos:    documentos,
		Observacoes:   o.Observacoes,
		Valor:         o.Valor,
		DataEntrega:   dto.FormatDatePtr(o.DataEntrega),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
