package http

import (
	"errors"
	"net/http"

	"github.com/evergreenhands/nonprofit-backend/internal/content"
	"github.com/evergreenhands/nonprofit-backend/internal/pkg/request"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service content.Service
}

func NewHandler(service content.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListPrograms(c *gin.Context) {
	list, err := h.service.ListPrograms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list programs"})
		return
	}

	items := make([]ProgramResponse, len(list))
	for i, p := range list {
		items[i] = NewProgramResponse(p)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) GetProgram(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	p, err := h.service.GetProgramByID(c.Request.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrProgramNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "program not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get program"})
		}
		return
	}

	c.JSON(http.StatusOK, NewProgramResponse(p))
}

func (h *Handler) CreateProgram(c *gin.Context) {
	var body ProgramBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.CreateProgram(c.Request.Context(), content.ProgramRequest{
		Name:        body.Name,
		Summary:     body.Summary,
		Description: body.Description,
		SortOrder:   body.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, content.ErrNameRequired),
			errors.Is(err, content.ErrSummaryRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create program"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewProgramResponse(p))
}

func (h *Handler) UpdateProgram(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body ProgramBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.UpdateProgram(c.Request.Context(), uri.ID, content.ProgramRequest{
		Name:        body.Name,
		Summary:     body.Summary,
		Description: body.Description,
		SortOrder:   body.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, content.ErrProgramNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "program not found"})
		case errors.Is(err, content.ErrNameRequired),
			errors.Is(err, content.ErrSummaryRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update program"})
		}
		return
	}

	c.JSON(http.StatusOK, NewProgramResponse(p))
}

func (h *Handler) DeleteProgram(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.DeleteProgram(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, content.ErrProgramNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "program not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete program"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListImpactStats(c *gin.Context) {
	list, err := h.service.ListImpactStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list impact stats"})
		return
	}

	items := make([]ImpactStatResponse, len(list))
	for i, s := range list {
		items[i] = NewImpactStatResponse(s)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
