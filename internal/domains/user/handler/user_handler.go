package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"course-catalog-backend/internal/domains/user"
	"course-catalog-backend/internal/shared/middleware"
	"course-catalog-backend/internal/shared/response"
	"course-catalog-backend/pkg/logger"
)

// UserHandler xử lý HTTP requests cho user domain
type UserHandler struct {
	service user.Service
}

// NewUserHandler tạo handler instance
func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// ========================================
// AUTHENTICATION ENDPOINTS
// ========================================

// Register xử lý POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	// STEP 1: PARSE REQUEST BODY
	var req user.RegisterRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return
	}

	// STEP 2: VALIDATE
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	// STEP 3: CALL SERVICE LAYER
	userDTO, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/users/"+userDTO.ID.String())
	response.Success(c, http.StatusCreated, "User registered successfully", userDTO)
}

// Login xử lý POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	// STEP 1: PARSE REQUEST
	var req user.LoginRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return
	}

	// STEP 2: VALIDATE
	if err := req.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
		return
	}

	// STEP 3: AUTHENTICATE
	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", res)
}

// ========================================
// PROFILE ENDPOINTS
// ========================================

// GetProfile xử lý GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	// STEP 1: GET USER ID FROM CONTEXT
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	// STEP 2: GET PROFILE
	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// HELPER FUNCTIONS
// ========================================

// getUserIDFromContext lấy user ID mà AuthMiddleware đã set
func getUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	raw, ok := middleware.CurrentUserID(c)
	if !ok {
		return uuid.Nil, errors.New("user ID not found in context")
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("invalid user ID in context")
	}
	return userID, nil
}

// handleError map domain errors thành HTTP responses
func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	// 401 Unauthorized - authentication failed
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, err.Error(), nil)

	// 404 Not Found
	case errors.Is(err, user.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, err.Error(), nil)

	// 409 Conflict - resource already exists
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.Error(c, http.StatusConflict, err.Error(), nil)

	// 500 Internal Server Error - unexpected errors
	default:
		logger.Error("user request failed", err)
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func (h *UserHandler) bindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return err
	}

	return nil
}
