package http

import (
	"time"

	"github.com/evergreenhands/nonprofit-backend/internal/content"
)

type ProgramResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewProgramResponse(p *content.Program) ProgramResponse {
	return ProgramResponse{
		ID:          p.ID,
		Name:        p.Name,
		Summary:     p.Summary,
		Description: p.Description,
		SortOrder:   p.SortOrder,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type ImpactStatResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

func NewImpactStatResponse(s *content.ImpactStat) ImpactStatResponse {
	return ImpactStatResponse{
		ID:    s.ID,
		Label: s.Label,
		Value: s.Value,
	}
}

type ProgramBody struct {
	Name        string `json:"name" binding:"required"`
	Summary     string `json:"summary" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}
