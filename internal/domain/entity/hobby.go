package entity

import "github.com/seunghun-dev/go-board-api/pkg/apperrors"

// Hobby is the optional user hobby category.
type Hobby string

const (
	HobbySports  Hobby = "SPORTS"
	HobbyMusic   Hobby = "MUSIC"
	HobbyMovie   Hobby = "MOVIE"
	HobbyGame    Hobby = "GAME"
	HobbyReading Hobby = "READING"
	HobbyTravel  Hobby = "TRAVEL"
)

var hobbies = map[Hobby]struct{}{
	HobbySports:  {},
	HobbyMusic:   {},
	HobbyMovie:   {},
	HobbyGame:    {},
	HobbyReading: {},
	HobbyTravel:  {},
}

func (h Hobby) String() string { return string(h) }

// ParseHobby converts a raw string into a Hobby, or nil for the empty string.
func ParseHobby(s string) (*Hobby, error) {
	if s == "" {
		return nil, nil
	}
	h := Hobby(s)
	if _, ok := hobbies[h]; !ok {
		return nil, apperrors.Validationf("invalid user hobby. hobby = %s", s)
	}
	return &h, nil
}
