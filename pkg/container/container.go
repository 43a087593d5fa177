package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"course-catalog-backend/internal/config"
	"course-catalog-backend/internal/infrastructure/seed"
	"course-catalog-backend/pkg/jwt"

	// User domain imports
	"course-catalog-backend/internal/domains/user"
	userHandler "course-catalog-backend/internal/domains/user/handler"
	userRepo "course-catalog-backend/internal/domains/user/repository"
	userService "course-catalog-backend/internal/domains/user/service"

	// Author domain imports
	authorHandler "course-catalog-backend/internal/domains/author/handler"
	authorRepo "course-catalog-backend/internal/domains/author/repository"
	authorService "course-catalog-backend/internal/domains/author/service"

	// Course domain imports
	"course-catalog-backend/internal/domains/course/draft"
	courseHandler "course-catalog-backend/internal/domains/course/handler"
	courseRepo "course-catalog-backend/internal/domains/course/repository"
	courseService "course-catalog-backend/internal/domains/course/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Pattern: Service Locator + Dependency Injection
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	// In-memory stores, lifetime = process
	UserRepo   user.Repository
	AuthorRepo authorRepo.RepositoryInterface
	CourseRepo courseRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	UserService   user.Service
	AuthorService authorService.ServiceInterface
	CourseService courseService.ServiceInterface
	DraftManager  *draft.Manager

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	UserHandler   *userHandler.UserHandler
	AuthorHandler *authorHandler.AuthorHandler
	CourseHandler *courseHandler.CourseHandler
	DraftHandler  *courseHandler.DraftHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo và initialize toàn bộ dependency graph
//
// QUAN TRỌNG: Thứ tự initialization:
// 1. Config
// 2. Infrastructure (JWT)
// 3. Repositories
// 4. Services - phụ thuộc Repositories
// 5. Seed data - phụ thuộc Services
// 6. Handlers - phụ thuộc Services
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: CONFIGURATION
	// ========================================
	log.Println("📋 Checking configuration...")
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config ready (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INFRASTRUCTURE
	// ========================================
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	// ========================================
	// STEP 3: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 4: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")
	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 5: SEED CATALOG
	// ========================================
	if err := c.seedCatalog(); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	c.UserRepo = userRepo.NewMemoryRepository()
	c.AuthorRepo = authorRepo.NewMemoryRepository()
	c.CourseRepo = courseRepo.NewMemoryRepository()
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.CourseService = courseService.NewCourseService(c.CourseRepo, c.AuthorService)

	// Draft sessions publish new authors to the directory and finished
	// courses to the course collection
	c.DraftManager = draft.NewManager(c.AuthorService, c.CourseService)
}

func (c *Container) seedCatalog() error {
	path := c.Config.Catalog.SeedFile
	if path == "" {
		log.Println("ℹ️  No seed file configured, starting with an empty catalog")
		return nil
	}

	log.Printf("🌱 Loading seed file %s...", path)
	catalog, err := seed.LoadFile(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := seed.Apply(ctx, catalog, c.AuthorService, c.CourseService); err != nil {
		return err
	}
	log.Printf("✅ Seeded %d authors and %d courses", len(catalog.Authors), len(catalog.Courses))
	return nil
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.CourseHandler = courseHandler.NewCourseHandler(c.CourseService)
	c.DraftHandler = courseHandler.NewDraftHandler(c.DraftManager, c.CourseService)
}

// Cleanup releases container resources on shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")
	// In-memory stores need no teardown
	log.Println("✅ Container cleanup completed")
}
