package content

import (
	"errors"
	"time"
)

var (
	ErrProgramNotFound = errors.New("program not found")
	ErrNameRequired    = errors.New("program name is required")
	ErrSummaryRequired = errors.New("program summary is required")
)

// Program is a single entry on the public programs page.
type Program struct {
	ID          string
	Name        string
	Summary     string
	Description string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ImpactStat is a headline figure on the impact page, e.g.
// "Meals served" / "120,000".
type ImpactStat struct {
	ID        string
	Label     string
	Value     string
	SortOrder int
}
