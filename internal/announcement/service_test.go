package announcement

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evergreenhands/nonprofit-backend/internal/file"
)

// fakeRepo is an in-memory Repository preserving insertion order.
type fakeRepo struct {
	items      []*Announcement
	createErr  error
	updateErr  error
	lastFilter Filter
	nextID     int
}

func (r *fakeRepo) Create(_ context.Context, a *Announcement) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	a.ID = fmt.Sprintf("ann-%d", r.nextID)
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Announcement, error) {
	for _, a := range r.items {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) List(_ context.Context, filter Filter) ([]*Announcement, int, error) {
	r.lastFilter = filter
	return r.items, len(r.items), nil
}

func (r *fakeRepo) Update(_ context.Context, a *Announcement) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for i, existing := range r.items {
		if existing.ID == a.ID {
			cp := *a
			cp.UpdatedAt = time.Now()
			r.items[i] = &cp
			return nil
		}
	}
	return ErrNotFound
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	for i, existing := range r.items {
		if existing.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// fakeFiles is an in-memory stand-in for the file service.
type fakeFiles struct {
	uploadErr error
	uploads   []file.UploadInput
	deleted   []string
	nextID    int
}

func (f *fakeFiles) Upload(_ context.Context, in file.UploadInput) (*file.File, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploads = append(f.uploads, in)
	f.nextID++
	return &file.File{
		ID:       fmt.Sprintf("file-%d", f.nextID),
		Filename: in.FileHeader.Filename,
		Category: in.Category,
	}, nil
}

func (f *fakeFiles) Get(context.Context, string) (*file.File, error) {
	return nil, file.ErrNotFound
}

func (f *fakeFiles) Download(context.Context, string) (io.ReadCloser, *file.File, error) {
	return nil, nil, file.ErrNotFound
}

func (f *fakeFiles) DownloadThumbnail(context.Context, string) (io.ReadCloser, *file.File, error) {
	return nil, nil, file.ErrNotFound
}

func (f *fakeFiles) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

// fixedNow keeps the "today" boundary deterministic across the suite.
var fixedNow = time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local)

func newTestService(repo *fakeRepo, files *fakeFiles) *service {
	return &service{
		repo:             repo,
		files:            files,
		maxBrochureBytes: 1 << 20,
		now:              func() time.Time { return fixedNow },
	}
}

func validInput() Input {
	return Input{
		Title:       "Community Food Drive",
		Description: "Join us for our annual community food drive at the hall.",
		EventVenue:  "Riverside Community Hall",
		EventDate:   "2026-09-15",
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr error
	}{
		{"empty title", func(in *Input) { in.Title = "" }, ErrTitleRequired},
		{"whitespace title", func(in *Input) { in.Title = "   " }, ErrTitleRequired},
		{"short title", func(in *Input) { in.Title = "Short" }, ErrTitleTooShort},
		{"long title", func(in *Input) { in.Title = strings.Repeat("a", TitleMaxLen+1) }, ErrTitleTooLong},
		{"empty description", func(in *Input) { in.Description = "" }, ErrDescriptionRequired},
		{"short description", func(in *Input) { in.Description = "Too brief" }, ErrDescriptionTooShort},
		{"long description", func(in *Input) { in.Description = strings.Repeat("b", DescriptionMaxLen+1) }, ErrDescriptionTooLong},
		{"empty venue", func(in *Input) { in.EventVenue = " " }, ErrVenueRequired},
		{"missing date", func(in *Input) { in.EventDate = "" }, ErrEventDateRequired},
		{"unparseable date", func(in *Input) { in.EventDate = "next tuesday" }, ErrEventDateRequired},
		{"date in the past", func(in *Input) { in.EventDate = "2026-08-31" }, ErrEventDatePast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			files := &fakeFiles{}
			svc := newTestService(repo, files)

			in := validInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), CreateRequest{
				Input:    in,
				Brochure: &multipart.FileHeader{Filename: "flyer.pdf"},
			})

			require.ErrorIs(t, err, tt.wantErr)
			// Nothing may be written or uploaded on a validation failure.
			assert.Empty(t, repo.items)
			assert.Empty(t, files.uploads)
		})
	}
}

func TestCreateValidationOrder(t *testing.T) {
	// Multiple violations report the first one in field order.
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeFiles{})

	_, err := svc.Create(context.Background(), CreateRequest{Input: Input{
		Title:       "Bad",
		Description: "",
		EventVenue:  "",
		EventDate:   "1999-01-01",
	}})
	require.ErrorIs(t, err, ErrTitleTooShort)
}

func TestCreateWithoutBrochure(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeFiles{})

	in := validInput()
	a, err := svc.Create(context.Background(), CreateRequest{Input: in})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Nil(t, a.BrochureFileID)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local), a.EventDate)

	// Round-trip: a fetch returns the same record.
	got, err := svc.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Title, got.Title)
	assert.Equal(t, a.Description, got.Description)
	assert.Equal(t, a.EventVenue, got.EventVenue)
	assert.True(t, a.EventDate.Equal(got.EventDate))
	assert.Nil(t, got.BrochureFileID)
}

func TestCreateEventToday(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeFiles{})

	in := validInput()
	in.EventDate = "2026-09-01" // same day as fixedNow

	a, err := svc.Create(context.Background(), CreateRequest{Input: in})
	require.NoError(t, err)
	assert.True(t, a.IsUpcoming(fixedNow), "an event dated today must classify as upcoming")
}

func TestCreateWithBrochure(t *testing.T) {
	repo := &fakeRepo{}
	files := &fakeFiles{}
	svc := newTestService(repo, files)

	a, err := svc.Create(context.Background(), CreateRequest{
		Input:    validInput(),
		Brochure: &multipart.FileHeader{Filename: "flyer.pdf"},
	})
	require.NoError(t, err)

	require.NotNil(t, a.BrochureFileID)
	assert.Equal(t, "file-1", *a.BrochureFileID)

	require.Len(t, files.uploads, 1)
	assert.Equal(t, BrochureCategory, files.uploads[0].Category)
	assert.Equal(t, int64(1<<20), files.uploads[0].MaxSizeBytes)
}

func TestCreateBrochureUploadFails(t *testing.T) {
	repo := &fakeRepo{}
	files := &fakeFiles{uploadErr: errors.New("storage unreachable")}
	svc := newTestService(repo, files)

	_, err := svc.Create(context.Background(), CreateRequest{
		Input:    validInput(),
		Brochure: &multipart.FileHeader{Filename: "flyer.pdf"},
	})

	require.ErrorIs(t, err, ErrBrochureUpload)
	// No record may exist after a failed upload.
	assert.Empty(t, repo.items)
}

func TestCreateInsertFailsAfterUpload(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("db down")}
	files := &fakeFiles{}
	svc := newTestService(repo, files)

	_, err := svc.Create(context.Background(), CreateRequest{
		Input:    validInput(),
		Brochure: &multipart.FileHeader{Filename: "flyer.pdf"},
	})

	require.Error(t, err)
	// The fresh upload is discarded so no orphaned reference survives.
	assert.Equal(t, []string{"file-1"}, files.deleted)
}

func seedAnnouncement(t *testing.T, svc Service, brochure *multipart.FileHeader) *Announcement {
	t.Helper()
	a, err := svc.Create(context.Background(), CreateRequest{
		Input:    validInput(),
		Brochure: brochure,
	})
	require.NoError(t, err)
	return a
}

func TestUpdateValidation(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeFiles{})
	a := seedAnnouncement(t, svc, nil)

	in := validInput()
	in.EventDate = "2026-08-30"

	_, err := svc.Update(context.Background(), a.ID, UpdateRequest{Input: in})
	require.ErrorIs(t, err, ErrEventDatePast)

	// Stored record is untouched.
	got, err := svc.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.True(t, got.EventDate.Equal(a.EventDate))
}

func TestUpdatePreservesBrochure(t *testing.T) {
	repo := &fakeRepo{}
	files := &fakeFiles{}
	svc := newTestService(repo, files)
	a := seedAnnouncement(t, svc, &multipart.FileHeader{Filename: "flyer.pdf"})

	in := validInput()
	in.EventDate = "2026-12-24"

	updated, err := svc.Update(context.Background(), a.ID, UpdateRequest{Input: in})
	require.NoError(t, err)

	require.NotNil(t, updated.BrochureFileID)
	assert.Equal(t, *a.BrochureFileID, *updated.BrochureFileID)
	assert.Equal(t, time.Date(2026, 12, 24, 0, 0, 0, 0, time.Local), updated.EventDate)
}

func TestUpdateReplacesBrochure(t *testing.T) {
	repo := &fakeRepo{}
	files := &fakeFiles{}
	svc := newTestService(repo, files)
	a := seedAnnouncement(t, svc, &multipart.FileHeader{Filename: "old.pdf"})

	updated, err := svc.Update(context.Background(), a.ID, UpdateRequest{
		Input:    validInput(),
		Brochure: &multipart.FileHeader{Filename: "new.pdf"},
	})
	require.NoError(t, err)

	require.NotNil(t, updated.BrochureFileID)
	assert.Equal(t, "file-2", *updated.BrochureFileID)
	// Replacing never deletes the previous attachment.
	assert.Empty(t, files.deleted)
}

func TestUpdateBrochureUploadFails(t *testing.T) {
	repo := &fakeRepo{}
	files := &fakeFiles{}
	svc := newTestService(repo, files)
	a := seedAnnouncement(t, svc, &multipart.FileHeader{Filename: "flyer.pdf"})

	files.uploadErr = errors.New("storage unreachable")

	in := validInput()
	in.Title = "Completely Different Headline"

	_, err := svc.Update(context.Background(), a.ID, UpdateRequest{
		Input:    in,
		Brochure: &multipart.FileHeader{Filename: "new.pdf"},
	})
	require.ErrorIs(t, err, ErrBrochureUpload)

	// All fields, including the old brochure reference, stay as they were.
	got, err := svc.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Title, got.Title)
	require.NotNil(t, got.BrochureFileID)
	assert.Equal(t, *a.BrochureFileID, *got.BrochureFileID)
}

func TestUpdateWriteFailsAfterUpload(t *testing.T) {
	repo := &fakeRepo{}
	files := &fakeFiles{}
	svc := newTestService(repo, files)
	a := seedAnnouncement(t, svc, nil)

	repo.updateErr = errors.New("db down")

	_, err := svc.Update(context.Background(), a.ID, UpdateRequest{
		Input:    validInput(),
		Brochure: &multipart.FileHeader{Filename: "new.pdf"},
	})
	require.Error(t, err)
	assert.Equal(t, []string{"file-1"}, files.deleted)
}

func TestUpdateNotFound(t *testing.T) {
	files := &fakeFiles{}
	svc := newTestService(&fakeRepo{}, files)

	_, err := svc.Update(context.Background(), "missing", UpdateRequest{
		Input:    validInput(),
		Brochure: &multipart.FileHeader{Filename: "flyer.pdf"},
	})
	require.ErrorIs(t, err, ErrNotFound)
	// The lookup fails before any upload happens.
	assert.Empty(t, files.uploads)
}

func TestDeleteTwice(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeFiles{})
	a := seedAnnouncement(t, svc, nil)

	require.NoError(t, svc.Delete(context.Background(), a.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), a.ID), ErrNotFound)
}

func TestListNormalizesFilter(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeFiles{})

	_, _, err := svc.List(context.Background(), Filter{
		Status:    StatusUpcoming,
		SortBy:    "drop table",
		SortOrder: "sideways",
	})
	require.NoError(t, err)

	// Today is pinned per call, normalized to midnight.
	assert.True(t, repo.lastFilter.Today.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, StatusUpcoming, repo.lastFilter.Status)
	// Unknown sort inputs fall back to repository defaults.
	assert.Empty(t, repo.lastFilter.SortBy)
	assert.Empty(t, repo.lastFilter.SortOrder)
}
