package application

import (
	"context"
	"sort"

	"github.com/seunghun-dev/go-board-api/internal/domain/entity"
	"github.com/seunghun-dev/go-board-api/pkg/apperrors"
	"github.com/seunghun-dev/go-board-api/pkg/paging"
)

// In-memory repositories for service tests. Loads return copies so every
// lookup behaves like a fresh row scan, the same as the SQL implementations.

type memUserRepo struct {
	seq   int64
	users map[int64]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*entity.User)}
}

func (r *memUserRepo) Save(_ context.Context, u *entity.User) (*entity.User, error) {
	r.seq++
	u.ID = r.seq
	cp := *u
	r.users[u.ID] = &cp
	return u, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.NotFoundf("there is no user. id = %d", id)
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.NotFoundf("there is no user. email = %s", email)
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return apperrors.NotFoundf("there is no user. id = %d", u.ID)
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return apperrors.NotFoundf("there is no user. id = %d", u.ID)
	}
	delete(r.users, u.ID)
	return nil
}

func (r *memUserRepo) DeleteAll(_ context.Context) error {
	r.users = make(map[int64]*entity.User)
	return nil
}

type memPostRepo struct {
	seq   int64
	posts map[int64]*entity.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[int64]*entity.Post)}
}

func (r *memPostRepo) Save(_ context.Context, p *entity.Post) (*entity.Post, error) {
	r.seq++
	p.ID = r.seq
	cp := *p
	r.posts[p.ID] = &cp
	return p, nil
}

func (r *memPostRepo) FindByID(_ context.Context, id int64) (*entity.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, apperrors.NotFoundf("there is no post. id = %d", id)
	}
	cp := *p
	return &cp, nil
}

func (r *memPostRepo) FindPage(_ context.Context, req paging.Request) (paging.Page[*entity.Post], error) {
	all := make([]*entity.Post, 0, len(r.posts))
	for _, p := range r.posts {
		cp := *p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.CreatedAt.Equal(b.CreatedAt) {
			if req.Direction == paging.Asc {
				return a.ID < b.ID
			}
			return a.ID > b.ID
		}
		if req.Direction == paging.Asc {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	total := int64(len(all))
	start := req.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + req.Size
	if end > len(all) {
		end = len(all)
	}
	return paging.NewPage(all[start:end], req, total), nil
}

func (r *memPostRepo) Update(_ context.Context, p *entity.Post) error {
	if _, ok := r.posts[p.ID]; !ok {
		return apperrors.NotFoundf("there is no post. id = %d", p.ID)
	}
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *memPostRepo) Delete(_ context.Context, p *entity.Post) error {
	if _, ok := r.posts[p.ID]; !ok {
		return apperrors.NotFoundf("there is no post. id = %d", p.ID)
	}
	delete(r.posts, p.ID)
	return nil
}

func (r *memPostRepo) DeleteAll(_ context.Context) error {
	r.posts = make(map[int64]*entity.Post)
	return nil
}
