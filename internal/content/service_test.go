package content

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	programs []*Program
	stats    []*ImpactStat
	nextID   int
}

func (r *fakeRepo) CreateProgram(_ context.Context, p *Program) error {
	r.nextID++
	p.ID = fmt.Sprintf("prog-%d", r.nextID)
	cp := *p
	r.programs = append(r.programs, &cp)
	return nil
}

func (r *fakeRepo) GetProgramByID(_ context.Context, id string) (*Program, error) {
	for _, p := range r.programs {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrProgramNotFound
}

func (r *fakeRepo) ListPrograms(_ context.Context) ([]*Program, error) {
	return r.programs, nil
}

func (r *fakeRepo) UpdateProgram(_ context.Context, p *Program) error {
	for i, existing := range r.programs {
		if existing.ID == p.ID {
			cp := *p
			r.programs[i] = &cp
			return nil
		}
	}
	return ErrProgramNotFound
}

func (r *fakeRepo) DeleteProgram(_ context.Context, id string) error {
	for i, existing := range r.programs {
		if existing.ID == id {
			r.programs = append(r.programs[:i], r.programs[i+1:]...)
			return nil
		}
	}
	return ErrProgramNotFound
}

func (r *fakeRepo) ListImpactStats(_ context.Context) ([]*ImpactStat, error) {
	return r.stats, nil
}

func TestProgramCRUD(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.CreateProgram(ctx, ProgramRequest{Name: "", Summary: "Meals for seniors"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.CreateProgram(ctx, ProgramRequest{Name: "Meal Delivery", Summary: "  "})
	assert.ErrorIs(t, err, ErrSummaryRequired)

	p, err := svc.CreateProgram(ctx, ProgramRequest{
		Name:    "Meal Delivery",
		Summary: "Weekly meals for homebound seniors",
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)

	updated, err := svc.UpdateProgram(ctx, p.ID, ProgramRequest{
		Name:      "Meal Delivery Program",
		Summary:   "Weekly meals for homebound seniors",
		SortOrder: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Meal Delivery Program", updated.Name)
	assert.Equal(t, 2, updated.SortOrder)

	require.NoError(t, svc.DeleteProgram(ctx, p.ID))
	assert.ErrorIs(t, svc.DeleteProgram(ctx, p.ID), ErrProgramNotFound)
}
