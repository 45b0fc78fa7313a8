package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/evergreenhands/nonprofit-backend/internal/announcement"
	"github.com/evergreenhands/nonprofit-backend/internal/pkg/request"
	"github.com/evergreenhands/nonprofit-backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service announcement.Service
}

func NewHandler(service announcement.Service) *Handler {
	return &Handler{service: service}
}

// validationErrs are the field-level failures that map to 400.
var validationErrs = []error{
	announcement.ErrTitleRequired,
	announcement.ErrTitleTooShort,
	announcement.ErrTitleTooLong,
	announcement.ErrDescriptionRequired,
	announcement.ErrDescriptionTooShort,
	announcement.ErrDescriptionTooLong,
	announcement.ErrVenueRequired,
	announcement.ErrEventDateRequired,
	announcement.ErrEventDatePast,
}

func isValidationErr(err error) bool {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	status := announcement.StatusAll
	if req.Status != "" {
		status = announcement.Status(req.Status)
	}

	filter := announcement.Filter{
		Keyword:   req.Keyword,
		Status:    status,
		SortBy:    req.SortBy,
		SortOrder: strings.ToUpper(req.SortOrder),
		Page:      req.Page,
		PageSize:  req.PageSize,
	}

	list, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list announcements"})
		return
	}

	now := time.Now()
	items := make([]Response, len(list))
	for i, a := range list {
		items[i] = NewResponse(a, now)
	}

	resp := response.NewPageResponse(items, req.Page, req.PageSize, total)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, announcement.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "announcement not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get announcement"})
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(a, time.Now()))
}

func (h *Handler) Create(c *gin.Context) {
	var form AnnouncementForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	a, err := h.service.Create(c.Request.Context(), announcement.CreateRequest{
		Input: announcement.Input{
			Title:       form.Title,
			Description: form.Description,
			EventVenue:  form.EventVenue,
			EventDate:   form.EventDate,
		},
		Brochure: form.Brochure,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewResponse(a, time.Now()))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var form AnnouncementForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	a, err := h.service.Update(c.Request.Context(), uri.ID, announcement.UpdateRequest{
		Input: announcement.Input{
			Title:       form.Title,
			Description: form.Description,
			EventVenue:  form.EventVenue,
			EventDate:   form.EventDate,
		},
		Brochure: form.Brochure,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(a, time.Now()))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, announcement.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "announcement not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete announcement"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// writeError maps create/update outcomes onto HTTP statuses. Brochure
// upload failures are retryable by the caller, so they get 502 with a
// generic message rather than a validation-style 400.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case isValidationErr(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, announcement.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "announcement not found"})
	case errors.Is(err, announcement.ErrBrochureUpload):
		c.JSON(http.StatusBadGateway, gin.H{"error": "brochure upload failed, please try again"})
	default:
		response.Error(c, err)
	}
}
