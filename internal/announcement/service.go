package announcement

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/evergreenhands/nonprofit-backend/internal/file"
	"github.com/evergreenhands/nonprofit-backend/internal/pkg/apperror"
)

// BrochureCategory is the storage category brochure uploads land under.
const BrochureCategory = "brochures"

// brochureTypes lists the MIME types accepted for brochure uploads.
var brochureTypes = []string{"application/pdf", "image/jpeg", "image/png", "image/webp"}

type CreateRequest struct {
	Input
	Brochure *multipart.FileHeader
}

type UpdateRequest struct {
	Input
	Brochure *multipart.FileHeader
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Announcement, error)
	GetByID(ctx context.Context, id string) (*Announcement, error)
	List(ctx context.Context, filter Filter) ([]*Announcement, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Announcement, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo             Repository
	files            file.Service
	maxBrochureBytes int64
	now              func() time.Time
}

func NewService(repo Repository, files file.Service, maxBrochureBytes int64) Service {
	return &service{
		repo:             repo,
		files:            files,
		maxBrochureBytes: maxBrochureBytes,
		now:              time.Now,
	}
}

// Create validates the input, uploads the brochure (if any) and only then
// inserts the record. An upload failure leaves the store untouched; an
// insert failure after a successful upload deletes the fresh upload again
// so no orphaned attachment reference can exist.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Announcement, error) {
	eventDate, err := validate(req.Input, s.now())
	if err != nil {
		return nil, err
	}

	var brochureID *string
	if req.Brochure != nil {
		f, err := s.uploadBrochure(ctx, req.Brochure)
		if err != nil {
			return nil, err
		}
		brochureID = &f.ID
	}

	a := &Announcement{
		Title:          req.Input.Title,
		Description:    req.Input.Description,
		EventVenue:     req.Input.EventVenue,
		EventDate:      eventDate,
		BrochureFileID: brochureID,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		if brochureID != nil {
			s.discardUpload(ctx, *brochureID)
		}
		return nil, err
	}
	return a, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Announcement, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a materialized page of announcements. The upcoming/past
// status filter is evaluated against today's date at call time.
func (s *service) List(ctx context.Context, filter Filter) ([]*Announcement, int, error) {
	filter.Today = DateOnly(s.now())

	switch filter.SortBy {
	case "", "event_date", "created_at", "title":
	default:
		filter.SortBy = ""
	}
	switch filter.SortOrder {
	case "", "ASC", "DESC":
	default:
		filter.SortOrder = ""
	}

	return s.repo.List(ctx, filter)
}

// Update applies the same validation as Create against the new field
// values. A freshly supplied brochure replaces the stored reference; the
// old blob is left in place for out-of-band cleanup. Without a new
// brochure the existing reference is preserved.
func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Announcement, error) {
	eventDate, err := validate(req.Input, s.now())
	if err != nil {
		return nil, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var uploadedID *string
	if req.Brochure != nil {
		f, err := s.uploadBrochure(ctx, req.Brochure)
		if err != nil {
			return nil, err
		}
		uploadedID = &f.ID
	}

	a.Title = req.Input.Title
	a.Description = req.Input.Description
	a.EventVenue = req.Input.EventVenue
	a.EventDate = eventDate
	if uploadedID != nil {
		a.BrochureFileID = uploadedID
	}

	if err := s.repo.Update(ctx, a); err != nil {
		if uploadedID != nil {
			s.discardUpload(ctx, *uploadedID)
		}
		return nil, err
	}
	return a, nil
}

// Delete removes the record. The brochure blob is intentionally left in
// storage; deleting the same id again reports ErrNotFound.
func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// uploadBrochure stores the attachment before any record write. Client
// faults (size, type) pass through unchanged; infrastructure failures are
// wrapped in ErrBrochureUpload so callers can treat them as retryable.
func (s *service) uploadBrochure(ctx context.Context, fh *multipart.FileHeader) (*file.File, error) {
	f, err := s.files.Upload(ctx, file.UploadInput{
		FileHeader:   fh,
		Category:     BrochureCategory,
		MaxSizeBytes: s.maxBrochureBytes,
		AllowedTypes: brochureTypes,
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrBrochureUpload, err)
	}
	return f, nil
}

// discardUpload compensates a record-write failure by removing the file
// uploaded moments earlier. Best effort: a leftover blob is preferable to
// masking the original error.
func (s *service) discardUpload(ctx context.Context, fileID string) {
	if err := s.files.Delete(ctx, fileID); err != nil {
		log.Printf("failed to discard uploaded brochure %s: %v", fileID, err)
	}
}
