package repository

import (
	"context"

	"github.com/tu-usuario/farmastock/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// La búsqueda por username es exacta (case-sensitive) y global: el
// username es único entre todas las farmacias.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
