package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/seunghun-dev/go-board-api/internal/domain/entity"
	"github.com/seunghun-dev/go-board-api/internal/domain/repository"
	"github.com/seunghun-dev/go-board-api/pkg/paging"
)

// PostService orchestrates post persistence and enforces that every write
// goes through the aggregate's own validation.
type PostService struct {
	Posts  repository.PostRepository
	Users  repository.UserRepository
	Logger *logrus.Logger
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Users: users, Logger: logger}
}

type CreatePostInput struct {
	UserID  int64
	Title   string
	Content string
}

type UpdatePostInput struct {
	UserID  int64
	Title   string
	Content string
}

type PostResponse struct {
	PostID    int64     `json:"postId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type PagePostResponse struct {
	Posts         []PostResponse `json:"posts"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	First         bool           `json:"first"`
	Last          bool           `json:"last"`
	TotalPages    int            `json:"totalPages"`
	TotalElements int64          `json:"totalElements"`
}

// Save creates a post owned by the given user and returns the assigned id.
func (s *PostService) Save(ctx context.Context, in CreatePostInput) (int64, error) {
	user, err := s.Users.FindByID(ctx, in.UserID)
	if err != nil {
		return 0, err
	}

	p, err := entity.NewPost(in.Title, in.Content, user)
	if err != nil {
		return 0, err
	}

	saved, err := s.Posts.Save(ctx, p)
	if err != nil {
		return 0, err
	}
	s.Logger.WithFields(logrus.Fields{"post_id": saved.ID, "user_id": user.ID}).Info("post created")
	return saved.ID, nil
}

func (s *PostService) FindOne(ctx context.Context, id int64) (*PostResponse, error) {
	p, err := s.Posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toPostResponse(p)
	return &resp, nil
}

// FindAll returns one page of posts with the derived paging metadata.
func (s *PostService) FindAll(ctx context.Context, req paging.Request) (*PagePostResponse, error) {
	page, err := s.Posts.FindPage(ctx, req)
	if err != nil {
		return nil, err
	}

	mapped := paging.Map(page, func(p *entity.Post) PostResponse { return toPostResponse(p) })
	return &PagePostResponse{
		Posts:         mapped.Items,
		Page:          mapped.Number,
		Size:          mapped.Size,
		First:         mapped.First(),
		Last:          mapped.Last(),
		TotalPages:    mapped.TotalPages(),
		TotalElements: mapped.TotalElements,
	}, nil
}

// Update loads the post and the requesting user, then delegates the
// ownership check and field validation to the aggregate.
func (s *PostService) Update(ctx context.Context, id int64, in UpdatePostInput) error {
	p, err := s.Posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	user, err := s.Users.FindByID(ctx, in.UserID)
	if err != nil {
		return err
	}

	if err := p.Update(user, in.Title, in.Content); err != nil {
		return err
	}

	if err := s.Posts.Update(ctx, p); err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{"post_id": id, "user_id": user.ID}).Info("post updated")
	return nil
}

func (s *PostService) Delete(ctx context.Context, id int64) error {
	p, err := s.Posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Posts.Delete(ctx, p); err != nil {
		return err
	}
	s.Logger.WithField("post_id", id).Info("post deleted")
	return nil
}

func toPostResponse(p *entity.Post) PostResponse {
	return PostResponse{
		PostID:    p.ID,
		Title:     p.Title.Value(),
		Content:   p.Content,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
	}
}
