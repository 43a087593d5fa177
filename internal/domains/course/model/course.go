package model

import (
	"strings"

	"course-catalog-backend/internal/shared/utils"
)

// Course is a finished course record.
// Authors holds author ids in the order they were assigned.
type Course struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	CreationDate string   `json:"creation_date" yaml:"creation_date"`
	Duration     int      `json:"duration" yaml:"duration"` // minutes
	Authors      []string `json:"authors" yaml:"authors"`
}

// CourseView is a course ready for display
type CourseView struct {
	Course
	FormattedDuration     string   `json:"formatted_duration"`
	FormattedCreationDate string   `json:"formatted_creation_date"`
	AuthorNames           []string `json:"author_names"`
}

// CourseFilter - Query parameters for GET /v1/courses
type CourseFilter struct {
	Search string `form:"search"`
}

// Matches reports whether the course title or id contains the query,
// ignoring case. An empty query matches everything.
func (f CourseFilter) Matches(c Course) bool {
	query := strings.ToLower(strings.TrimSpace(f.Search))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Title), query) ||
		strings.Contains(strings.ToLower(c.ID), query)
}

// ToView attaches derived display values
func (c Course) ToView(authorNames []string) CourseView {
	if authorNames == nil {
		authorNames = []string{}
	}
	return CourseView{
		Course:                c,
		FormattedDuration:     utils.FormatDuration(c.Duration),
		FormattedCreationDate: utils.FormatCreationDate(c.CreationDate),
		AuthorNames:           authorNames,
	}
}

// Validate checks the invariants of a stored course
func (c Course) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrInvalidCourse
	}
	if c.Duration <= 0 {
		return ErrInvalidCourse
	}
	return nil
}
