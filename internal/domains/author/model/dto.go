package model

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	Name string `json:"name"`
}

// AuthorListResponse - GET /v1/authors
type AuthorListResponse struct {
	Data    []Author `json:"data"`
	Total   int      `json:"total"`
	Version uint64   `json:"version"`
}
