package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/evergreenhands/nonprofit-backend/internal/admin"
	adminHttp "github.com/evergreenhands/nonprofit-backend/internal/admin/http"
	"github.com/evergreenhands/nonprofit-backend/internal/announcement"
	annHttp "github.com/evergreenhands/nonprofit-backend/internal/announcement/http"
	"github.com/evergreenhands/nonprofit-backend/internal/auth"
	"github.com/evergreenhands/nonprofit-backend/internal/content"
	contentHttp "github.com/evergreenhands/nonprofit-backend/internal/content/http"
	"github.com/evergreenhands/nonprofit-backend/internal/file"
	fileHttp "github.com/evergreenhands/nonprofit-backend/internal/file/http"
)

// Config holds the services and settings the router assembles.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	AnnService     announcement.Service
	ContentService content.Service
	FileService    file.Service
	AdminService   admin.Service
	JWTManager     *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Auth) and registers the public
// site routes plus the admin console routes for each module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Website dev server
			"http://localhost:5173", // Admin console dev server
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request carries a valid admin JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks the account behind the token is still active.
	adminMiddleware := RequireActiveAdmin(cfg.AdminService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	annHandler := annHttp.NewHandler(cfg.AnnService)
	contentHandler := contentHttp.NewHandler(cfg.ContentService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)
	adminHandler := adminHttp.NewHandler(cfg.AdminService, cfg.JWTManager)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		annHttp.RegisterRoutes(v1, annHandler, authMiddleware, adminMiddleware)
		contentHttp.RegisterRoutes(v1, contentHandler, authMiddleware, adminMiddleware)
		adminHttp.RegisterRoutes(v1, adminHandler, authMiddleware)
	}

	// Brochures and gallery images are fetched by the public site directly.
	fileHttp.RegisterRoutes(r, fileHandler)

	return r
}
