package repository

import (
	"context"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// ClientFilter parâmetros de listagem de clientes.
// Cidades é a cláusula de escopo do chamador: nil = sem restrição (admin),
// lista vazia = nenhum acesso. Cidade é o filtro exato opcional.
type ClientFilter struct {
	Cidades []string
	Cidade  string
	Status  string
	Search  string
	Skip    int
	Limit   int
}

// ClientRepository define o porto de persistência para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.Client, error)
	List(ctx context.Context, f ClientFilter) ([]*entity.Client, error)
	Count(ctx context.Context, f ClientFilter) (int64, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
}
