package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"course-catalog-backend/internal/domains/course/model"
	"course-catalog-backend/internal/domains/course/service"
	"course-catalog-backend/internal/shared/response"
	"course-catalog-backend/pkg/logger"
)

type CourseHandler struct {
	service service.ServiceInterface
}

func NewCourseHandler(svc service.ServiceInterface) *CourseHandler {
	return &CourseHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /v1/courses?search=
// ════════════════════════════════════════════════════════════════

func (h *CourseHandler) List(c *gin.Context) {
	var filter model.CourseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	views, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, views, &response.Meta{Total: len(views)})
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/courses/:id
// ════════════════════════════════════════════════════════════════

func (h *CourseHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	// Guard: unknown ids never reach the detail view
	ok, err := h.service.Exists(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !ok {
		h.handleError(c, model.ErrCourseNotFound)
		return
	}

	view, err := h.service.GetView(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get course successfully", view)
}

func (h *CourseHandler) handleError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("course request failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
