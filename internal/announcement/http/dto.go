package http

import (
	"mime/multipart"
	"time"

	"github.com/evergreenhands/nonprofit-backend/internal/announcement"
	"github.com/evergreenhands/nonprofit-backend/internal/file"
)

type Response struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventVenue  string    `json:"event_venue"`
	EventDate   string    `json:"event_date"` // YYYY-MM-DD
	BrochureURL *string   `json:"brochure_url,omitempty"`
	Upcoming    bool      `json:"upcoming"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewResponse(a *announcement.Announcement, now time.Time) Response {
	var brochureURL *string
	if a.BrochureFileID != nil {
		u := file.FileURL(*a.BrochureFileID)
		brochureURL = &u
	}

	return Response{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		EventVenue:  a.EventVenue,
		EventDate:   a.EventDate.Format(time.DateOnly),
		BrochureURL: brochureURL,
		Upcoming:    a.IsUpcoming(now),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// AnnouncementForm is the multipart body shared by create and update.
// Field-level rules live in the service so violations map to their
// specific messages instead of a generic binding error.
type AnnouncementForm struct {
	Title       string                `form:"title"`
	Description string                `form:"description"`
	EventVenue  string                `form:"event_venue"`
	EventDate   string                `form:"event_date"` // YYYY-MM-DD
	Brochure    *multipart.FileHeader `form:"brochure"`
}

// ListRequest carries list query parameters. Pagination defaults are
// applied here, at binding time, so the page metadata echoed in the
// response always matches the rows that were fetched.
type ListRequest struct {
	Keyword   string `form:"q"`
	Status    string `form:"status" binding:"omitempty,oneof=all upcoming past"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=event_date created_at title"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc ASC DESC"`
	Page      int    `form:"page,default=1" binding:"min=1"`
	PageSize  int    `form:"page_size,default=20" binding:"min=1,max=100"`
}
