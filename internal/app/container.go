package app

import (
	"time"

	"github.com/evergreenhands/nonprofit-backend/internal/admin"
	"github.com/evergreenhands/nonprofit-backend/internal/announcement"
	"github.com/evergreenhands/nonprofit-backend/internal/api"
	"github.com/evergreenhands/nonprofit-backend/internal/auth"
	"github.com/evergreenhands/nonprofit-backend/internal/content"
	"github.com/evergreenhands/nonprofit-backend/internal/file"
	"github.com/evergreenhands/nonprofit-backend/internal/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	DBPool         *pgxpool.Pool
	Storage        storage.Storage
	JWTSecret      string
	JWTTTL         time.Duration
	BcryptCost     int
	MaxUploadBytes int64
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router       *gin.Engine
	JWTManager   *auth.JWTManager
	AdminService admin.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// File Module
	fileRepo := file.NewRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, cfg.Storage)

	// Announcement Module
	annRepo := announcement.NewPgxRepository(cfg.DBPool)
	annService := announcement.NewService(annRepo, fileService, cfg.MaxUploadBytes)

	// Content Module
	contentRepo := content.NewPgxRepository(cfg.DBPool)
	contentService := content.NewService(contentRepo)

	// Admin Module
	adminRepo := admin.NewPgxRepository(cfg.DBPool)
	adminService := admin.NewService(adminRepo, passwordHasher)

	// API Router Config
	routerParams := api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		AnnService:     annService,
		ContentService: contentService,
		FileService:    fileService,
		AdminService:   adminService,
		JWTManager:     jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:       router,
		JWTManager:   jwtManager,
		AdminService: adminService,
	}
}
