package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seunghun-dev/go-board-api/internal/domain/entity"
	"github.com/seunghun-dev/go-board-api/internal/domain/repository"
	"github.com/seunghun-dev/go-board-api/pkg/apperrors"
	"github.com/seunghun-dev/go-board-api/pkg/paging"
)

const postSelectColumns = `
		p.post_id, p.title, p.content, p.created_by, p.created_at,
		u.user_id, u.name, u.age, u.hobby, u.email, u.password, u.login, u.created_by, u.created_at`

type PostRepository struct {
	db DB
}

func NewPostRepository(db DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Save(ctx context.Context, p *entity.Post) (*entity.Post, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO posts (title, content, user_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING post_id
	`, p.Title.Value(), p.Content, p.User.ID, p.CreatedBy, p.CreatedAt)

	if err := row.Scan(&p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	row := r.db.QueryRow(ctx, `
		SELECT`+postSelectColumns+`
		FROM posts p
		JOIN users u ON u.user_id = p.user_id
		WHERE p.post_id = $1
	`, id)

	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("there is no post. id = %d", id)
		}
		return nil, err
	}
	return p, nil
}

// FindPage runs a count plus one page query ordered by creation time. The
// direction comes from a validated enum, not raw caller input.
func (r *PostRepository) FindPage(ctx context.Context, req paging.Request) (paging.Page[*entity.Post], error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return paging.Page[*entity.Post]{}, err
	}

	order := "DESC"
	if req.Direction == paging.Asc {
		order = "ASC"
	}
	query := fmt.Sprintf(`
		SELECT`+postSelectColumns+`
		FROM posts p
		JOIN users u ON u.user_id = p.user_id
		ORDER BY p.created_at %s, p.post_id %s
		LIMIT $1 OFFSET $2
	`, order, order)

	rows, err := r.db.Query(ctx, query, req.Size, req.Offset())
	if err != nil {
		return paging.Page[*entity.Post]{}, err
	}
	defer rows.Close()

	items := make([]*entity.Post, 0, req.Size)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return paging.Page[*entity.Post]{}, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return paging.Page[*entity.Post]{}, err
	}

	return paging.NewPage(items, req, total), nil
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	res, err := r.db.Exec(ctx, `
		UPDATE posts
		SET title = $1, content = $2
		WHERE post_id = $3
	`, p.Title.Value(), p.Content, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.NotFoundf("there is no post. id = %d", p.ID)
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, p *entity.Post) error {
	res, err := r.db.Exec(ctx, `DELETE FROM posts WHERE post_id = $1`, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.NotFoundf("there is no post. id = %d", p.ID)
	}
	return nil
}

func (r *PostRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM posts`)
	return err
}

func scanPost(row pgx.Row) (*entity.Post, error) {
	p := &entity.Post{User: &entity.User{}}
	var title string
	var hobby *string

	if err := row.Scan(&p.ID, &title, &p.Content, &p.CreatedBy, &p.CreatedAt,
		&p.User.ID, &p.User.Name, &p.User.Age, &hobby, &p.User.Email,
		&p.User.Password, &p.User.LoggedIn, &p.User.CreatedBy, &p.User.CreatedAt); err != nil {
		return nil, err
	}

	t, err := entity.NewTitle(title)
	if err != nil {
		return nil, err
	}
	p.Title = t
	if hobby != nil {
		h := entity.Hobby(*hobby)
		p.User.Hobby = &h
	}
	return p, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
