package repository

import (
	"context"

	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
)

// UserRepository define o porto de persistência para User (DIP).
// Não há remoção: usuários são desativados via IsActive.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]*entity.User, error)
}
