package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"course-catalog-backend/internal/domains/user"
	"course-catalog-backend/pkg/jwt"
	"course-catalog-backend/pkg/logger"
)

// bcrypt cost = 12: balance giữa security và performance
const defaultBcryptCost = 12

// userService implement user.Service interface
type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
	bcryptCost int
	now        func() time.Time
}

// NewUserService tạo service instance
func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
		bcryptCost: defaultBcryptCost,
		now:        time.Now,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

// Register tạo user mới
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// 2. BUSINESS RULE: Check email already exists
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	// 3. HASH PASSWORD
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. CREATE USER ENTITY
	newUser := &user.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    s.now(),
	}

	// 5. PERSIST
	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id": newUser.ID.String(),
	})

	dto := newUser.ToDTO()
	return &dto, nil
}

// Login xác thực user và trả về JWT access token
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. FIND USER BY EMAIL
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if errors.Is(err, user.ErrUserNotFound) {
		// Không phân biệt "email not found" với sai mật khẩu
		return nil, user.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 3. VERIFY PASSWORD
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	// 4. GENERATE TOKEN
	token, expiresAt, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email, u.Name)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &user.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        u.ToDTO(),
	}, nil
}

// ========================================
// USER PROFILE
// ========================================

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := u.ToDTO()
	return &dto, nil
}
