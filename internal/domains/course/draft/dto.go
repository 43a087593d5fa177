package draft

import (
	authormodel "course-catalog-backend/internal/domains/author/model"
	"course-catalog-backend/internal/domains/course/model"
)

// FieldResponse - PATCH /v1/course-drafts/fields
type FieldResponse struct {
	Accepted bool  `json:"accepted"`
	State    State `json:"state"`
}

// ValidateResponse - POST /v1/course-drafts/validate
type ValidateResponse struct {
	Valid bool  `json:"valid"`
	State State `json:"state"`
}

// AuthorResponse - POST /v1/course-drafts/authors
type AuthorResponse struct {
	Author authormodel.Author `json:"author"`
	State  State              `json:"state"`
}

// UnassignResponse - DELETE /v1/course-drafts/authors/:id
type UnassignResponse struct {
	Changed bool  `json:"changed"`
	State   State `json:"state"`
}

// SubmitResponse - POST /v1/course-drafts/submit
type SubmitResponse struct {
	Course model.CourseView `json:"course"`
	State  State            `json:"state"`
}
