package content

import (
	"context"
	"strings"
)

type ProgramRequest struct {
	Name        string
	Summary     string
	Description string
	SortOrder   int
}

type Service interface {
	CreateProgram(ctx context.Context, req ProgramRequest) (*Program, error)
	GetProgramByID(ctx context.Context, id string) (*Program, error)
	ListPrograms(ctx context.Context) ([]*Program, error)
	UpdateProgram(ctx context.Context, id string, req ProgramRequest) (*Program, error)
	DeleteProgram(ctx context.Context, id string) error
	ListImpactStats(ctx context.Context) ([]*ImpactStat, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateProgram(req ProgramRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(req.Summary) == "" {
		return ErrSummaryRequired
	}
	return nil
}

func (s *service) CreateProgram(ctx context.Context, req ProgramRequest) (*Program, error) {
	if err := validateProgram(req); err != nil {
		return nil, err
	}

	p := &Program{
		Name:        req.Name,
		Summary:     req.Summary,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}

	if err := s.repo.CreateProgram(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProgramByID(ctx context.Context, id string) (*Program, error) {
	return s.repo.GetProgramByID(ctx, id)
}

func (s *service) ListPrograms(ctx context.Context) ([]*Program, error) {
	return s.repo.ListPrograms(ctx)
}

func (s *service) UpdateProgram(ctx context.Context, id string, req ProgramRequest) (*Program, error) {
	if err := validateProgram(req); err != nil {
		return nil, err
	}

	p, err := s.repo.GetProgramByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Summary = req.Summary
	p.Description = req.Description
	p.SortOrder = req.SortOrder

	if err := s.repo.UpdateProgram(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProgram(ctx context.Context, id string) error {
	return s.repo.DeleteProgram(ctx, id)
}

func (s *service) ListImpactStats(ctx context.Context) ([]*ImpactStat, error) {
	return s.repo.ListImpactStats(ctx)
}
