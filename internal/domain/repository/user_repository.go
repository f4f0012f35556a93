package repository

import (
	"context"

	"github.com/seunghun-dev/go-board-api/internal/domain/entity"
)

// UserRepository is the persistence boundary for the user aggregate.
// Lookup misses return a NotFound apperror.
type UserRepository interface {
	Save(ctx context.Context, u *entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, u *entity.User) error
	DeleteAll(ctx context.Context) error
}
