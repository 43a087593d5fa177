package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DraftFieldRequest - PATCH /v1/course-drafts/fields
type DraftFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (r DraftFieldRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Field,
			validation.Required.Error("field is required"),
			validation.In("title", "description", "duration").Error("field must be one of title, description, duration"),
		),
	)
}
