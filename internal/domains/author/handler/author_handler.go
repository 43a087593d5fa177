package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"course-catalog-backend/internal/domains/author/model"
	"course-catalog-backend/internal/domains/author/service"
	"course-catalog-backend/internal/shared/response"
	"course-catalog-backend/pkg/logger"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/authors/"+created.ID)
	response.Success(c, http.StatusCreated, "Create author successfully", created)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	a, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get author successfully", a)
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	roster, err := h.service.Roster(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get authors successfully", model.AuthorListResponse{
		Data:    roster.Authors,
		Total:   len(roster.Authors),
		Version: roster.Version,
	})
}

func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		response.ErrorWithDetails(c, model.ToHTTPStatus(err), model.ToErrorCode(err), vErr.Message, gin.H{
			"reason": vErr.Reason,
		})
		return
	}

	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("author request failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
