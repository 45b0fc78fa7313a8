package file

import (
	"net/http"
	"time"

	"github.com/evergreenhands/nonprofit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "file not found")
	ErrTooLarge       = apperror.New(http.StatusBadRequest, "file exceeds the maximum allowed size")
	ErrTypeNotAllowed = apperror.New(http.StatusBadRequest, "file type is not allowed")
	ErrNoThumbnail    = apperror.New(http.StatusNotFound, "thumbnail not available for this file")
)

// File represents an uploaded attachment's metadata. The bytes live in
// blob storage under StoragePath.
type File struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	Category      string    `json:"category"`
	StoragePath   string    `json:"-"` // Internal path
	ThumbnailPath *string   `json:"-"` // Internal path
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
}

// FileURL returns the public URL for accessing a file by its ID.
func FileURL(id string) string {
	return "/files/" + id
}

// ThumbnailURL returns the public URL for accessing a file's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/files/" + id + "/thumbnail"
}
