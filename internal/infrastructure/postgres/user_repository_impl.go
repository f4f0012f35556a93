package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/seunghun-dev/go-board-api/internal/domain/entity"
	"github.com/seunghun-dev/go-board-api/internal/domain/repository"
	"github.com/seunghun-dev/go-board-api/pkg/apperrors"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (name, age, hobby, email, password, login, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING user_id
	`, u.Name, u.Age, hobbyValue(u.Hobby), u.Email, u.Password, u.LoggedIn, u.CreatedBy, u.CreatedAt)

	if err := row.Scan(&u.ID); err != nil {
		return nil, translateUserPgError(err, u.Email)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT user_id, name, age, hobby, email, password, login, created_by, created_at
		FROM users
		WHERE user_id = $1
	`, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("there is no user. id = %d", id)
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT user_id, name, age, hobby, email, password, login, created_by, created_at
		FROM users
		WHERE email = $1
	`, email)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("there is no user. email = %s", email)
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	res, err := r.db.Exec(ctx, `
		UPDATE users
		SET name = $1, age = $2, hobby = $3, password = $4, login = $5
		WHERE user_id = $6
	`, u.Name, u.Age, hobbyValue(u.Hobby), u.Password, u.LoggedIn, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.NotFoundf("there is no user. id = %d", u.ID)
	}
	return nil
}

// Delete removes a user. The posts FK carries no delete action, so a user
// who still owns posts cannot be removed.
func (r *UserRepository) Delete(ctx context.Context, u *entity.User) error {
	res, err := r.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, u.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return apperrors.Statef("user still has posts. id = %d", u.ID)
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.NotFoundf("there is no user. id = %d", u.ID)
	}
	return nil
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users`)
	return err
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var hobby *string

	if err := row.Scan(&u.ID, &u.Name, &u.Age, &hobby, &u.Email, &u.Password,
		&u.LoggedIn, &u.CreatedBy, &u.CreatedAt); err != nil {
		return nil, err
	}

	if hobby != nil {
		h := entity.Hobby(*hobby)
		u.Hobby = &h
	}
	return u, nil
}

func hobbyValue(h *entity.Hobby) *string {
	if h == nil {
		return nil
	}
	s := h.String()
	return &s
}

// The email uniqueness check in the service and the column constraint can
// disagree under concurrent registration; the constraint wins.
func translateUserPgError(err error, email string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return apperrors.DuplicateEmailf("email is already existed. email = %s", email)
	}
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
