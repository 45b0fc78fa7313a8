package http

import (
	"errors"
	"net/http"

	"github.com/evergreenhands/nonprofit-backend/internal/admin"
	"github.com/evergreenhands/nonprofit-backend/internal/auth"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service    admin.Service
	jwtManager *auth.JWTManager
}

func NewHandler(service admin.Service, jwtManager *auth.JWTManager) *Handler {
	return &Handler{
		service:    service,
		jwtManager: jwtManager,
	}
}

func (h *Handler) Login(c *gin.Context) {
	var body LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	a, err := h.service.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, admin.ErrInactiveAccount):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(a.ID, a.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		Admin:       NewAdminResponse(a),
	})
}

// Me returns the authenticated admin's own account info.
func (h *Handler) Me(c *gin.Context) {
	adminID := auth.GetAdminID(c)

	a, err := h.service.GetByID(c.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "admin not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get admin"})
		return
	}

	c.JSON(http.StatusOK, NewAdminResponse(a))
}
