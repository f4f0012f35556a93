package entity

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/seunghun-dev/go-board-api/pkg/apperrors"
)

const (
	PasswordMinLength = 8
	PasswordMaxLength = 30
)

var (
	// Letters (including Hangul), digits and underscore, 1-30 chars.
	nameRegex = regexp.MustCompile(`^[가-힣a-zA-Z0-9_]{1,30}$`)

	// Email validation as per RFC2822 standards.
	emailRegex = regexp.MustCompile("^[a-z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-z0-9!#$%&'*+/=?^_`{|}~-]+)*@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$")
)

// User is the aggregate root for the user domain. It owns identity, the
// stored credential and the login-flag state machine; every constructive or
// mutating operation re-validates the fields it touches.
type User struct {
	ID       int64
	Name     *string
	Age      *int
	Hobby    *Hobby
	Email    string
	Password string
	LoggedIn bool
	Audit
}

// NewUser validates all fields and returns a logged-out user.
func NewUser(name *string, age *int, hobby *Hobby, email, password, createdBy string, createdAt time.Time) (*User, error) {
	if err := validateUserFields(name, age, email, password); err != nil {
		return nil, err
	}
	return &User{
		Name:     name,
		Age:      age,
		Hobby:    hobby,
		Email:    email,
		Password: password,
		LoggedIn: false,
		Audit:    NewAudit(createdBy, createdAt),
	}, nil
}

// Update mutates name, age, hobby and password in place. The email is fixed
// at creation and never changes. Field validation runs before the login-state
// check so malformed input is reported even for logged-out users.
func (u *User) Update(name *string, age *int, hobby *Hobby, password string) error {
	if err := validateUserFields(name, age, u.Email, password); err != nil {
		return err
	}
	if !u.LoggedIn {
		return apperrors.AccessDeniedf("user is not logged in. email = %s", u.Email)
	}

	u.Name = name
	u.Age = age
	u.Hobby = hobby
	u.Password = password
	return nil
}

// Login checks the supplied password format first, then equality against the
// stored credential, then the already-logged-in state, in that order.
func (u *User) Login(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	if u.Password != password {
		return apperrors.Authenticationf("wrong password. email = %s", u.Email)
	}
	if u.LoggedIn {
		return apperrors.Statef("user is already logged in. email = %s", u.Email)
	}

	u.LoggedIn = true
	return nil
}

func (u *User) Logout() error {
	if !u.LoggedIn {
		return apperrors.AccessDeniedf("user is not logged in. email = %s", u.Email)
	}

	u.LoggedIn = false
	return nil
}

func validateUserFields(name *string, age *int, email, password string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateAge(age); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	return validatePassword(password)
}

func validateName(name *string) error {
	if name == nil {
		return nil
	}
	if !nameRegex.MatchString(*name) {
		return apperrors.Validationf("invalid user name. name = %s", *name)
	}
	return nil
}

func validateAge(age *int) error {
	if age == nil {
		return nil
	}
	if *age < 0 {
		return apperrors.Validationf("user age should be over 0. age = %d", *age)
	}
	return nil
}

func validateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return apperrors.Validationf("invalid user email. email = %s", email)
	}
	return nil
}

// validatePassword is the lookahead rule of the original pattern expressed as
// a predicate: 8-30 chars with at least one ASCII upper, lower and digit.
// Special characters are permitted.
func validatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < PasswordMinLength || n > PasswordMaxLength {
		return apperrors.Validationf("invalid user password")
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return apperrors.Validationf("invalid user password")
	}
	return nil
}
