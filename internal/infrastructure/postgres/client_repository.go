package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementação de ClientRepository sobre PostgreSQL.
// O escopo de cidades do chamador entra como condição da consulta:
// nil não restringe, lista vazia não devolve nada.
type ClientRepo struct {
	q Querier
}

// NewClientRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, nome_empresa, nome_fantasia, status, cidade, telefone, whatsapp, email,
	responsavel, cnpj, forma_envio, codigo_iob, novo_cliente, tipo_empresa, endereco, tipo_regime,
	empresa_grupo, created_at, updated_at`

// Create persiste um novo cliente. CNPJ é único em toda a base.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	endereco, err := json.Marshal(client.Endereco)
	if err != nil {
		return fmt.Errorf("marshal endereco: %w", err)
	}
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err = r.q.Exec(ctx, query,
		client.ID, client.NomeEmpresa, client.NomeFantasia, string(client.Status), client.Cidade,
		client.Telefone, client.Whatsapp, client.Email, client.Responsavel, client.CNPJ,
		string(client.FormaEnvio), client.CodigoIOB, client.NovoCliente, string(client.TipoEmpresa),
		endereco, string(client.TipoRegime), client.EmpresaGrupo, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get client")
}

// GetByCNPJ obtém um cliente pelo CNPJ exato.
func (r *ClientRepo) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE cnpj = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, cnpj), "get client by cnpj")
}

// List lista clientes dentro do escopo, filtrados e paginados.
func (r *ClientRepo) List(ctx context.Context, f repository.ClientFilter) ([]*entity.Client, error) {
	where, args := clientConditions(f)
	args = append(args, f.Limit, f.Skip)
	query := fmt.Sprintf(`SELECT `+clientColumns+` FROM clients%s ORDER BY nome_empresa LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Count conta os clientes que a listagem devolveria, sem paginação.
func (r *ClientRepo) Count(ctx context.Context, f repository.ClientFilter) (int64, error) {
	where, args := clientConditions(f)
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clients`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return total, nil
}

// Update atualiza um cliente.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	endereco, err := json.Marshal(client.Endereco)
	if err != nil {
		return fmt.Errorf("marshal endereco: %w", err)
	}
	query := `
		UPDATE clients
		SET nome_empresa = $2, nome_fantasia = $3, status = $4, cidade = $5, telefone = $6,
		    whatsapp = $7, email = $8, responsavel = $9, cnpj = $10, forma_envio = $11,
		    codigo_iob = $12, novo_cliente = $13, tipo_empresa = $14, endereco = $15,
		    tipo_regime = $16, empresa_grupo = $17, updated_at = $18
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		client.ID, client.NomeEmpresa, client.NomeFantasia, string(client.Status), client.Cidade,
		client.Telefone, client.Whatsapp, client.Email, client.Responsavel, client.CNPJ,
		string(client.FormaEnvio), client.CodigoIOB, client.NovoCliente, string(client.TipoEmpresa),
		endereco, string(client.TipoRegime), client.EmpresaGrupo, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um cliente por ID.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func clientConditions(f repository.ClientFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Cidades != nil {
		args = append(args, f.Cidades)
		conds = append(conds, fmt.Sprintf("cidade = ANY($%d)", len(args)))
	}
	if f.Cidade != "" {
		args = append(args, f.Cidade)
		conds = append(conds, fmt.Sprintf("cidade = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, foldSearch(f.Search))
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(unaccent(lower(nome_empresa)) LIKE $%d OR unaccent(lower(nome_fantasia)) LIKE $%d OR cnpj LIKE $%d)",
			n, n, n))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *ClientRepo) scanOne(row pgx.Row, op string) (*entity.Client, error) {
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	var status, formaEnvio, tipoEmpresa, tipoRegime string
	var endereco []byte
	err := row.Scan(
		&c.ID, &c.NomeEmpresa, &c.NomeFantasia, &status, &c.Cidade, &c.Telefone, &c.Whatsapp,
		&c.Email, &c.Responsavel, &c.CNPJ, &formaEnvio, &c.CodigoIOB, &c.NovoCliente,
		&tipoEmpresa, &endereco, &tipoRegime, &c.EmpresaGrupo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(endereco, &c.Endereco); err != nil {
		return nil, fmt.Errorf("unmarshal endereco: %w", err)
	}
	c.Status = entity.StatusCliente(status)
	c.FormaEnvio = entity.FormaEnvio(formaEnvio)
	c.TipoEmpresa = entity.TipoEmpresa(tipoEmpresa)
	c.TipoRegime = entity.TipoRegime(tipoRegime)
	return &c, nil
}
