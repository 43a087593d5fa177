package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authormodel "course-catalog-backend/internal/domains/author/model"
	"course-catalog-backend/internal/domains/course/draft"
	"course-catalog-backend/internal/domains/course/form"
	"course-catalog-backend/internal/domains/course/model"
	"course-catalog-backend/internal/domains/course/service"
	"course-catalog-backend/internal/shared/middleware"
	"course-catalog-backend/internal/shared/response"
	"course-catalog-backend/pkg/logger"
)

// DraftHandler exposes the course-creation session of the signed-in user
type DraftHandler struct {
	drafts  *draft.Manager
	courses service.ServiceInterface
}

func NewDraftHandler(drafts *draft.Manager, courses service.ServiceInterface) *DraftHandler {
	return &DraftHandler{
		drafts:  drafts,
		courses: courses,
	}
}

// ════════════════════════════════════════════════════════════════
// SESSION: POST|GET|DELETE /v1/course-drafts
// ════════════════════════════════════════════════════════════════

func (h *DraftHandler) Start(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	state, err := h.drafts.Start(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Course draft started", state)
}

func (h *DraftHandler) Get(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	state, err := h.drafts.Get(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get course draft successfully", state)
}

// Discard - DELETE /v1/course-drafts
func (h *DraftHandler) Discard(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	h.drafts.Discard(userID)
	response.Success(c, http.StatusOK, "Course draft discarded", nil)
}

// ════════════════════════════════════════════════════════════════
// FORM: PATCH /v1/course-drafts/fields, POST /v1/course-drafts/validate
// ════════════════════════════════════════════════════════════════

func (h *DraftHandler) SetField(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req model.DraftFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	accepted, state, err := h.drafts.SetField(c.Request.Context(), userID, form.Field(req.Field), req.Value)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Field updated", draft.FieldResponse{
		Accepted: accepted,
		State:    state,
	})
}

func (h *DraftHandler) Validate(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	valid, state, err := h.drafts.Validate(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Course draft validated", draft.ValidateResponse{
		Valid: valid,
		State: state,
	})
}

// ════════════════════════════════════════════════════════════════
// AUTHORS: POST /v1/course-drafts/authors
//          POST|DELETE /v1/course-drafts/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *DraftHandler) CreateAuthor(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req authormodel.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	author, state, err := h.drafts.CreateAuthor(c.Request.Context(), userID, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Create author successfully", draft.AuthorResponse{
		Author: author,
		State:  state,
	})
}

func (h *DraftHandler) Assign(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	state, err := h.drafts.Assign(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author assigned", state)
}

func (h *DraftHandler) Unassign(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	changed, state, err := h.drafts.Unassign(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author unassigned", draft.UnassignResponse{
		Changed: changed,
		State:   state,
	})
}

// ════════════════════════════════════════════════════════════════
// FINISH: POST /v1/course-drafts/submit, POST /v1/course-drafts/cancel
// ════════════════════════════════════════════════════════════════

func (h *DraftHandler) Submit(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	course, state, err := h.drafts.Submit(c.Request.Context(), userID)
	if err != nil {
		var formErr *draft.FormError
		if errors.As(err, &formErr) {
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "Please fill in all fields", gin.H{
				"fields": formErr.Fields,
				"state":  state,
			})
			return
		}
		h.handleError(c, err)
		return
	}

	view, err := h.courses.GetView(c.Request.Context(), course.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/courses/"+course.ID)
	response.Success(c, http.StatusCreated, "Create course successfully", draft.SubmitResponse{
		Course: *view,
		State:  state,
	})
}

func (h *DraftHandler) Cancel(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	state, err := h.drafts.Cancel(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Course draft cancelled", state)
}

func (h *DraftHandler) userID(c *gin.Context) (string, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return "", false
	}
	return userID, true
}

func (h *DraftHandler) handleError(c *gin.Context, err error) {
	var vErr *authormodel.ValidationError

	switch {
	case errors.As(err, &vErr):
		response.ErrorWithDetails(c, authormodel.ToHTTPStatus(err), authormodel.ToErrorCode(err), vErr.Message, gin.H{
			"reason": vErr.Reason,
		})
	case errors.Is(err, draft.ErrNoSession):
		response.ErrorResponse(c, http.StatusNotFound, "DRAFT_NOT_FOUND", "no course draft started")
	case errors.Is(err, form.ErrUnknownField):
		response.ErrorResponse(c, http.StatusBadRequest, "UNKNOWN_FIELD", err.Error())
	case errors.Is(err, authormodel.ErrAuthorNotFound):
		response.ErrorResponse(c, http.StatusNotFound, authormodel.ToErrorCode(err), err.Error())
	case model.ToHTTPStatus(err) != http.StatusInternalServerError:
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
	default:
		logger.Error("course draft request failed", err)
		response.InternalServerError(c, "Internal server error")
	}
}
