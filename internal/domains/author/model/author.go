package model

import (
	"strings"
	"unicode/utf8"
)

// Constants for validation
const (
	MinNameLength = 2
)

// Author is an entry of the shared author directory.
// Identity is ID; records never change after creation.
type Author struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Roster is a point-in-time copy of the directory.
// Version increases every time an author is added.
type Roster struct {
	Authors []Author `json:"authors"`
	Version uint64   `json:"version"`
}

// CheckName trims raw and applies the author name rules.
// taken reports whether a trimmed name is already used in the caller's scope.
func CheckName(raw string, taken func(name string) bool) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(name) < MinNameLength {
		return "", ErrNameTooShort
	}
	if taken != nil && taken(name) {
		return "", ErrNameDuplicate
	}
	return name, nil
}

// IndexOf returns the position of id in authors or -1
func IndexOf(authors []Author, id string) int {
	for i := range authors {
		if authors[i].ID == id {
			return i
		}
	}
	return -1
}

// IDs extracts ids preserving order
func IDs(authors []Author) []string {
	ids := make([]string, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}
	return ids
}
