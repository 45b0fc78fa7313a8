package announcement

import (
	"errors"
	"time"
)

// Validation and lookup errors surfaced by the announcement service.
var (
	ErrNotFound            = errors.New("announcement not found")
	ErrTitleRequired       = errors.New("title is required")
	ErrTitleTooShort       = errors.New("title must be at least 10 characters")
	ErrTitleTooLong        = errors.New("title must be at most 100 characters")
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooShort = errors.New("description must be at least 20 characters")
	ErrDescriptionTooLong  = errors.New("description must be at most 1000 characters")
	ErrVenueRequired       = errors.New("event venue is required")
	ErrEventDateRequired   = errors.New("event date is required (YYYY-MM-DD)")
	ErrEventDatePast       = errors.New("event date must not be in the past")
	ErrBrochureUpload      = errors.New("brochure upload failed")
)

// Field length bounds enforced at create and update time.
const (
	TitleMinLen       = 10
	TitleMaxLen       = 100
	DescriptionMinLen = 20
	DescriptionMaxLen = 1000
)

// Announcement represents a published event announcement.
// BrochureFileID references an uploaded file record; nil when no
// brochure is attached.
type Announcement struct {
	ID             string
	Title          string
	Description    string
	EventVenue     string
	EventDate      time.Time // date-only, midnight in server location
	BrochureFileID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Status selects the derived upcoming/past classification when listing.
type Status string

const (
	StatusAll      Status = "all"
	StatusUpcoming Status = "upcoming"
	StatusPast     Status = "past"
)

// Filter defines parameters for listing announcements.
// Today is the reference date for Status classification; it is filled
// in by the service, not by callers.
type Filter struct {
	Keyword   string
	Status    Status
	SortBy    string // event_date, created_at or title
	SortOrder string // ASC or DESC
	Page      int
	PageSize  int

	Today time.Time
}
