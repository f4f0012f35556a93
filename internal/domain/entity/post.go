package entity

import (
	"time"

	"github.com/seunghun-dev/go-board-api/pkg/apperrors"
)

// Post is a board entry exclusively owned by one user. The relation is
// navigable from Post to User only; the owner keeps no back-collection.
type Post struct {
	ID      int64
	Title   Title
	Content string
	User    *User
	Audit
}

// NewPost validates the fields and the owner and stamps the audit info with
// the owner's name and the current time.
func NewPost(title, content string, user *User) (*Post, error) {
	t, err := NewTitle(title)
	if err != nil {
		return nil, err
	}
	if err := validateOwner(user); err != nil {
		return nil, err
	}

	return &Post{
		Title:   t,
		Content: content,
		User:    user,
		Audit:   NewAudit(ownerName(user), time.Now()),
	}, nil
}

// Update rejects callers that are not the current owner before any field
// validation. Ownership compares stable user identifiers, not struct
// equality: two loaded copies of the same stored user are the same identity,
// while a distinct user with identical field values is not.
func (p *Post) Update(user *User, title, content string) error {
	if user == nil || p.User == nil || user.ID != p.User.ID {
		return apperrors.AccessDeniedf("user not able to update post. userId = %d", userID(user))
	}

	t, err := NewTitle(title)
	if err != nil {
		return err
	}
	if err := validateOwner(user); err != nil {
		return err
	}

	p.Title = t
	p.Content = content
	return nil
}

func validateOwner(user *User) error {
	if user == nil {
		return apperrors.Validationf("post user should not be nil")
	}
	if !user.LoggedIn {
		return apperrors.AccessDeniedf("user should be logged in. userId = %d", user.ID)
	}
	return nil
}

func ownerName(user *User) string {
	if user == nil || user.Name == nil {
		return ""
	}
	return *user.Name
}

func userID(user *User) int64 {
	if user == nil {
		return 0
	}
	return user.ID
}
