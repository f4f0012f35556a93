package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/seunghun-dev/go-board-api/internal/domain/entity"
	"github.com/seunghun-dev/go-board-api/internal/domain/repository"
	"github.com/seunghun-dev/go-board-api/pkg/apperrors"
)

// UserService orchestrates repository calls around the user aggregate and
// maps between request/response shapes and the entity.
type UserService struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

type SaveUserInput struct {
	Email    string
	Password string
	Name     string
	Age      *int
	Hobby    string
}

type UpdateUserInput struct {
	Name     *string
	Age      *int
	Hobby    string
	Password string
}

// UserResponse deliberately excludes the password and the login flag.
type UserResponse struct {
	Email string        `json:"email"`
	Name  *string       `json:"name,omitempty"`
	Age   *int          `json:"age,omitempty"`
	Hobby *entity.Hobby `json:"hobby,omitempty"`
}

// Save registers a new user after checking email uniqueness and returns the
// assigned id.
func (s *UserService) Save(ctx context.Context, in SaveUserInput) (int64, error) {
	exists, err := s.Repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, apperrors.DuplicateEmailf("email is already existed. email = %s", in.Email)
	}

	hobby, err := entity.ParseHobby(in.Hobby)
	if err != nil {
		return 0, err
	}
	var name *string
	if in.Name != "" {
		name = &in.Name
	}

	u, err := entity.NewUser(name, in.Age, hobby, in.Email, in.Password, in.Email, time.Now())
	if err != nil {
		return 0, err
	}

	saved, err := s.Repo.Save(ctx, u)
	if err != nil {
		return 0, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": saved.ID, "email": saved.Email}).Info("user created")
	return saved.ID, nil
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*UserResponse, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*UserResponse, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Update loads the user, delegates to the entity mutation and persists the
// result. Validation and login-state errors propagate from the entity.
func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (int64, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}

	hobby, err := entity.ParseHobby(in.Hobby)
	if err != nil {
		return 0, err
	}
	if err := u.Update(in.Name, in.Age, hobby, in.Password); err != nil {
		return 0, err
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		return 0, err
	}
	s.Logger.WithField("user_id", id).Info("user updated")
	return id, nil
}

// Login flips the stored login flag after the entity accepts the credential.
func (s *UserService) Login(ctx context.Context, email, password string) (int64, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if err := u.Login(password); err != nil {
		return 0, err
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return 0, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": email}).Info("user logged in")
	return u.ID, nil
}

func (s *UserService) Logout(ctx context.Context, email string) error {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := u.Logout(); err != nil {
		return err
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": email}).Info("user logged out")
	return nil
}

// DeleteByID removes a user; only a logged-in user may be deleted.
func (s *UserService) DeleteByID(ctx context.Context, id int64) error {
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !u.LoggedIn {
		return apperrors.AccessDeniedf("user is not logged in. id = %d", id)
	}
	if err := s.Repo.Delete(ctx, u); err != nil {
		return err
	}
	s.Logger.WithField("user_id", id).Info("user deleted")
	return nil
}

func toUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		Email: u.Email,
		Name:  u.Name,
		Age:   u.Age,
		Hobby: u.Hobby,
	}
}
