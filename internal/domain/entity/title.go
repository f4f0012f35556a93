package entity

import (
	"unicode/utf8"

	"github.com/seunghun-dev/go-board-api/pkg/apperrors"
)

const (
	TitleMinLength = 1
	TitleMaxLength = 100
)

// Title is the value object for a post subject. Length is counted in runes so
// Hangul titles are bounded the same way as ASCII ones.
type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	n := utf8.RuneCountInString(s)
	if n > TitleMaxLength {
		return Title{}, apperrors.Validationf("post title length should be under %d", TitleMaxLength)
	}
	if n < TitleMinLength {
		return Title{}, apperrors.Validationf("post title length should be over %d", TitleMinLength)
	}
	return Title{value: s}, nil
}

func (t Title) Value() string { return t.value }
