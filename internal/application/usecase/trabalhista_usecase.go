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

// TrabalhistaUseCase casos de uso de solicitações do departamento pessoal.
type TrabalhistaUseCase struct {
	solicitacoes repository.TrabalhistaRepository
	log          *logger.Logger
}

// NewTrabalhistaUseCase cria o caso de uso trabalhista.
func NewTrabalhistaUseCase(solicitacoes repository.TrabalhistaRepository, log *logger.Logger) *TrabalhistaUseCase {
	return &TrabalhistaUseCase{solicitacoes: solicitacoes, log: log}
}

// Create abre uma solicitação; nasce pendente com a data de hoje.
func (uc *TrabalhistaUseCase) Create(ctx context.Context, actor *entity.User, req dto.CreateSolicitacaoRequest) (*dto.SolicitacaoResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	prazo, err := dto.ParseDate("prazo", req.Prazo)
	if err != nil {
		return nil, err
	}
	funcionario, err := toFuncionario(req.Funcionario)
	if err != nil {
		return nil, err
	}

	responsavel := req.Responsavel
	if responsavel == "" {
		responsavel = actor.Name
	}

	now := time.Now().UTC()
	s := &entity.SolicitacaoTrabalhista{
		ID:              uuid.NewString(),
		EmpresaID:       req.EmpresaID,
		Empresa:         req.Empresa,
		Tipo:            entity.TipoSolicitacao(req.Tipo),
		Descricao:       req.Descricao,
		DataSolicitacao: now,
		Prazo:           prazo,
		Responsavel:     responsavel,
		Status:          entity.SolicitacaoPendente,
		Arquivos:        req.Arquivos,
		Observacoes:     req.Observacoes,
		Funcionario:     funcionario,
		Detalhes:        toDetalheFolha(req.Detalhes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.solicitacoes.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.log.Info().Str("solicitacao_id", s.ID).Str("tipo", req.Tipo).Msg("solicitação trabalhista aberta")
	return toSolicitacaoResponse(s), nil
}

// Get devolve uma solicitação por id.
func (uc *TrabalhistaUseCase) Get(ctx context.Context, id string) (*dto.SolicitacaoResponse, error) {
	s, err := uc.solicitacoes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSolicitacaoResponse(s), nil
}

// ListSolicitacoesQuery filtros de listagem vindos da rota.
type ListSolicitacoesQuery struct {
	Tipo   string
	Status string
	Search string
	Skip   int
	Limit  int
}

// List lista solicitações.
func (uc *TrabalhistaUseCase) List(ctx context.Context, q ListSolicitacoesQuery) (*dto.SolicitacaoListResponse, error) {
	skip, limit := clampPage(q.Skip, q.Limit, defaultLimit, maxRegistros)
	f := repository.TrabalhistaFilter{
		Tipo:   q.Tipo,
		Status: q.Status,
		Search: q.Search,
		Skip:   skip,
		Limit:  limit,
	}

	solicitacoes, err := uc.solicitacoes.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := uc.solicitacoes.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.SolicitacaoResponse, len(solicitacoes))
	for i, s := range solicitacoes {
		out[i] = toSolicitacaoResponse(s)
	}
	return &dto.SolicitacaoListResponse{Solicitacoes: out, Total: total, Skip: skip, Limit: limit}, nil
}

// Update atualização parcial da solicitação.
func (uc *TrabalhistaUseCase) Update(ctx context.Context, id string, req dto.UpdateSolicitacaoRequest) (*dto.SolicitacaoResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	s, err := uc.solicitacoes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Descricao != nil {
		s.Descricao = *req.Descricao
	}
	if req.Prazo != nil {
		prazo, err := dto.ParseDate("prazo", *req.Prazo)
		if err != nil {
			return nil, err
		}
		s.Prazo = prazo
	}
	if req.Responsavel != nil {
		s.Responsavel = *req.Responsavel
	}
	if req.Status != nil {
		s.Status = entity.StatusSolicitacao(*req.Status)
	}
	if req.Arquivos != nil {
		s.Arquivos = *req.Arquivos
	}
	if req.Observacoes != nil {
		s.Observacoes = *req.Observacoes
	}
	if req.Funcionario != nil {
		funcionario, err := toFuncionario(req.Funcionario)
		if err != nil {
			return nil, err
		}
		s.Funcionario = funcionario
	}
	if req.Detalhes != nil {
		s.Detalhes = toDetalheFolha(req.Detalhes)
	}
	s.UpdatedAt = time.Now().UTC()

	if err := uc.solicitacoes.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSolicitacaoResponse(s), nil
}

// Delete remove uma solicitação.
func (uc *TrabalhistaUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.solicitacoes.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.solicitacoes.Delete(ctx, id)
}

// Stats contagens por status e por tipo para o painel do módulo.
func (uc *TrabalhistaUseCase) Stats(ctx context.Context) (*dto.TrabalhistaStatsResponse, error) {
	s, err := uc.solicitacoes.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TrabalhistaStatsResponse{PorStatus: s.PorStatus, PorTipo: s.PorTipo}, nil
}

func toFuncionario(in *dto.FuncionarioDTO) (*entity.Funcionario, error) {
	if in == nil {
		return nil, nil
	}
	f := &entity.Funcionario{
		Nome:           in.Nome,
		CPF:            in.CPF,
		Funcao:         in.Funcao,
		Salario:        in.Salario,
		MotivoDemissao: in.MotivoDemissao,
	}
	if in.DataAdmissao != "" {
		admissao, err := dto.ParseDate("data_admissao", in.DataAdmissao)
		if err != nil {
			return nil, err
		}
		f.DataAdmissao = &admissao
	}
	return f, nil
}

func toDetalheFolha(in *dto.DetalheFolhaDTO) *entity.DetalheFolha {
	if in == nil {
		return nil
	}
	return &entity.DetalheFolha{
		TotalFuncionarios: in.TotalFuncionarios,
		TotalProventos:    in.TotalProventos,
		TotalDescontos:    in.TotalDescontos,
		TotalLiquido:      in.TotalLiquido,
	}
}

func toSolicitacaoResponse(s *entity.SolicitacaoTrabalhista) *dto.SolicitacaoResponse {
	arquivos := s.Arquivos
	if arquivos == nil {
		arquivos = []string{}
	}
	var funcionario *dto.FuncionarioDTO
	if s.Funcionario != nil {
		funcionario = &dto.FuncionarioDTO{
			Nome:           s.Funcionario.Nome,
			CPF:            s.Funcionario.CPF,
			Funcao:         s.Funcionario.Funcao,
			Salario:        s.Funcionario.Salario,
			DataAdmissao:   dto.FormatDatePtr(s.Funcionario.DataAdmissao),
			MotivoDemissao: s.Funcionario.MotivoDemissao,
		}
	}
	var detalhes *dto.DetalheFolhaDTO
	if s.Detalhes != nil {
		detalhes = &dto.DetalheFolhaDTO{
			TotalFuncionarios: s.Detalhes.TotalFuncionarios,
			TotalProventos:    s.Detalhes.TotalProventos,
			TotalDescontos:    s.Detalhes.TotalDescontos,
			TotalLiquido:      s.Detalhes.TotalLiquido,
		}
	}
	return &dto.SolicitacaoResponse{
		ID:              s.ID,
		EmpresaID:       s.EmpresaID,
		Empresa:         s.Empresa,
		Tipo:            string(s.Tipo),
		Descricao:       s.Descricao,
		DataSolicitacao: dto.FormatDate(s.DataSolicitacao),
		Prazo:           dto.FormatDate(s.Prazo),
		Responsavel:     s.Responsavel,
		Status:          string(s.Status),
		Arquivos:        arquivos,
		Observacoes:     s.Observacoes,
		Funcionario:     funcionario,
		Detalhes:        detalhes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
