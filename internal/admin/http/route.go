package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/auth")

	group.POST("/login", h.Login)
	group.GET("/me", authMiddleware, h.Me)
}
