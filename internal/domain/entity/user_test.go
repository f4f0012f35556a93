package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seunghun-dev/go-board-api/pkg/apperrors"
)

func ptr[T any](v T) *T { return &v }

func newTestUser(t *testing.T) *User {
	t.Helper()
	u, err := NewUser(ptr("seunghun"), ptr(28), ptr(HobbySports), "hello123@naver.com", "Abc12345", "hello123@naver.com", time.Now())
	require.NoError(t, err)
	return u
}

func TestNewUserDefaults(t *testing.T) {
	u := newTestUser(t)

	assert.False(t, u.LoggedIn)
	assert.Equal(t, "hello123@naver.com", u.Email)
	assert.Equal(t, "hello123@naver.com", u.CreatedBy)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestValidateName(t *testing.T) {
	valid := []string{"a", "seunghun", "seung_hun", "유저이름", "한글mixed123_", "abcdefghijklmnopqrstuvwxyz1234"}
	for _, name := range valid {
		t.Run("valid "+name, func(t *testing.T) {
			_, err := NewUser(ptr(name), nil, nil, "hello123@naver.com", "Abc12345", "system", time.Now())
			assert.NoError(t, err)
		})
	}

	invalid := []string{"", "with space", "hyphen-ated", "dot.name", "tab\tname", "abcdefghijklmnopqrstuvwxyz12345", "emoji😀"}
	for _, name := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			_, err := NewUser(ptr(name), nil, nil, "hello123@naver.com", "Abc12345", "system", time.Now())
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation), "expected validation error, got %v", err)
		})
	}

	t.Run("nil name permitted", func(t *testing.T) {
		_, err := NewUser(nil, nil, nil, "hello123@naver.com", "Abc12345", "system", time.Now())
		assert.NoError(t, err)
	})
}

func TestValidatePassword(t *testing.T) {
	valid := []string{"Abc12345", "passwordABC123", "updatedPassword1@", "A1b!!!!!", "Zz0aaaaaaaaaaaaaaaaaaaaaaaaaaa"}
	for _, pw := range valid {
		t.Run("valid "+pw, func(t *testing.T) {
			_, err := NewUser(nil, nil, nil, "hello123@naver.com", pw, "system", time.Now())
			assert.NoError(t, err)
		})
	}

	invalid := []string{
		"",
		"Ab1",      // too short
		"Abc1234",  // 7 chars
		"abc12345", // no uppercase
		"ABC12345", // no lowercase
		"Abcdefgh", // no digit
		"!@#$%^&*1A", // no lowercase
		"Abc1aaaaaaaaaaaaaaaaaaaaaaaaaaa", // 31 chars
	}
	for _, pw := range invalid {
		t.Run("invalid "+pw, func(t *testing.T) {
			_, err := NewUser(nil, nil, nil, "hello123@naver.com", pw, "system", time.Now())
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation), "expected validation error, got %v", err)
		})
	}
}

func TestValidateAge(t *testing.T) {
	for _, age := range []int{0, 1, 28, 150} {
		_, err := NewUser(nil, ptr(age), nil, "hello123@naver.com", "Abc12345", "system", time.Now())
		assert.NoError(t, err)
	}

	_, err := NewUser(nil, ptr(-1), nil, "hello123@naver.com", "Abc12345", "system", time.Now())
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = NewUser(nil, nil, nil, "hello123@naver.com", "Abc12345", "system", time.Now())
	assert.NoError(t, err)
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.com", "hello123@naver.com", "first.last@sub.example.co.kr", "u+tag@example.org"}
	for _, email := range valid {
		t.Run("valid "+email, func(t *testing.T) {
			_, err := NewUser(nil, nil, nil, email, "Abc12345", "system", time.Now())
			assert.NoError(t, err)
		})
	}

	invalid := []string{"", "plain", "@no-local.com", "no-at.com", "upper@Case.com", "two@@ats.com", "trailing@dot."}
	for _, email := range invalid {
		t.Run("invalid "+email, func(t *testing.T) {
			_, err := NewUser(nil, nil, nil, email, "Abc12345", "system", time.Now())
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation), "expected validation error, got %v", err)
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		u := newTestUser(t)
		require.NoError(t, u.Login("Abc12345"))
		assert.True(t, u.LoggedIn)
	})

	t.Run("malformed password fails before comparison", func(t *testing.T) {
		u := newTestUser(t)
		err := u.Login("short")
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		assert.False(t, u.LoggedIn)
	})

	t.Run("wrong password", func(t *testing.T) {
		u := newTestUser(t)
		err := u.Login("Wrong123456")
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthentication))
		assert.False(t, u.LoggedIn)
	})

	t.Run("double login", func(t *testing.T) {
		u := newTestUser(t)
		require.NoError(t, u.Login("Abc12345"))
		err := u.Login("Abc12345")
		assert.True(t, apperrors.IsKind(err, apperrors.KindState))
		assert.True(t, u.LoggedIn)
	})
}

func TestLogout(t *testing.T) {
	u := newTestUser(t)
	require.NoError(t, u.Login("Abc12345"))
	require.NoError(t, u.Logout())
	assert.False(t, u.LoggedIn)

	err := u.Logout()
	assert.True(t, apperrors.IsKind(err, apperrors.KindAccessDenied))
}

func TestUpdate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		u := newTestUser(t)
		require.NoError(t, u.Login("Abc12345"))

		err := u.Update(ptr("updatedName"), ptr(20), ptr(HobbyMusic), "updatedPassword1@")
		require.NoError(t, err)
		assert.Equal(t, "updatedName", *u.Name)
		assert.Equal(t, 20, *u.Age)
		assert.Equal(t, HobbyMusic, *u.Hobby)
		assert.Equal(t, "updatedPassword1@", u.Password)
	})

	t.Run("not logged in", func(t *testing.T) {
		u := newTestUser(t)
		err := u.Update(ptr("updatedName"), ptr(20), nil, "updatedPassword1@")
		assert.True(t, apperrors.IsKind(err, apperrors.KindAccessDenied))
		assert.Equal(t, "seunghun", *u.Name)
		assert.Equal(t, "Abc12345", u.Password)
	})

	t.Run("field validation runs before login check", func(t *testing.T) {
		u := newTestUser(t)
		err := u.Update(ptr("bad name!"), nil, nil, "updatedPassword1@")
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("clears optional fields when omitted", func(t *testing.T) {
		u := newTestUser(t)
		require.NoError(t, u.Login("Abc12345"))
		require.NoError(t, u.Update(nil, nil, nil, "Abc12345"))
		assert.Nil(t, u.Name)
		assert.Nil(t, u.Age)
		assert.Nil(t, u.Hobby)
	})
}

func TestParseHobby(t *testing.T) {
	h, err := ParseHobby("SPORTS")
	require.NoError(t, err)
	assert.Equal(t, HobbySports, *h)

	h, err = ParseHobby("")
	require.NoError(t, err)
	assert.Nil(t, h)

	_, err = ParseHobby("KNITTING")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}
