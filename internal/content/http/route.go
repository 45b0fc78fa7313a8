package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	programs := g.Group("/programs")

	// === Public Routes ===
	programs.GET("", h.ListPrograms)
	programs.GET("/:id", h.GetProgram)

	g.GET("/impact", h.ListImpactStats)

	// === Administration Routes ===
	adminPrograms := programs.Group("")
	adminPrograms.Use(authMiddleware, adminMiddleware)
	{
		adminPrograms.POST("", h.CreateProgram)
		adminPrograms.PUT("/:id", h.UpdateProgram)
		adminPrograms.DELETE("/:id", h.DeleteProgram)
	}
}
