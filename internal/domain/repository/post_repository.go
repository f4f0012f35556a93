package repository

import (
	"context"

	"github.com/seunghun-dev/go-board-api/internal/domain/entity"
	"github.com/seunghun-dev/go-board-api/pkg/paging"
)

// PostRepository is the persistence boundary for the post aggregate. Loaded
// posts carry their owning user.
type PostRepository interface {
	Save(ctx context.Context, p *entity.Post) (*entity.Post, error)
	FindByID(ctx context.Context, id int64) (*entity.Post, error)
	FindPage(ctx context.Context, req paging.Request) (paging.Page[*entity.Post], error)
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, p *entity.Post) error
	DeleteAll(ctx context.Context) error
}
