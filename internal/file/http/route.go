package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the public file retrieval routes. Brochures
// and gallery images are served to anonymous visitors, so no auth here.
func RegisterRoutes(r gin.IRouter, handler *Handler) {
	group := r.Group("/files")

	group.GET("/:id", handler.ServeFile)
	group.GET("/:id/thumbnail", handler.ServeThumbnail)
}
