package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	CreateProgram(ctx context.Context, p *Program) error
	GetProgramByID(ctx context.Context, id string) (*Program, error)
	ListPrograms(ctx context.Context) ([]*Program, error)
	UpdateProgram(ctx context.Context, p *Program) error
	DeleteProgram(ctx context.Context, id string) error
	ListImpactStats(ctx context.Context) ([]*ImpactStat, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) CreateProgram(ctx context.Context, p *Program) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.programs").
		Columns("name", "summary", "description", "sort_order").
		Values(p.Name, p.Summary, p.Description, p.SortOrder).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create program query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("create program failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetProgramByID(ctx context.Context, id string) (*Program, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "summary", "description", "sort_order", "created_at", "updated_at").
		From("public.programs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get program query failed: %w", err)
	}

	var p Program
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Name, &p.Summary, &p.Description, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("get program failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) ListPrograms(ctx context.Context) ([]*Program, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "summary", "description", "sort_order", "created_at", "updated_at").
		From("public.programs").
		OrderBy("sort_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list programs query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list programs failed: %w", err)
	}
	defer rows.Close()

	var result []*Program
	for rows.Next() {
		var p Program
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Summary, &p.Description, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan program failed: %w", err)
		}
		result = append(result, &p)
	}

	return result, nil
}

func (r *pgxRepository) UpdateProgram(ctx context.Context, p *Program) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.programs").
		Set("name", p.Name).
		Set("summary", p.Summary).
		Set("description", p.Description).
		Set("sort_order", p.SortOrder).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update program query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update program failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrProgramNotFound
	}
	return nil
}

func (r *pgxRepository) DeleteProgram(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.programs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete program query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete program failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrProgramNotFound
	}
	return nil
}

func (r *pgxRepository) ListImpactStats(ctx context.Context) ([]*ImpactStat, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "label", "value", "sort_order").
		From("public.impact_stats").
		OrderBy("sort_order ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list impact stats query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list impact stats failed: %w", err)
	}
	defer rows.Close()

	var result []*ImpactStat
	for rows.Next() {
		var s ImpactStat
		if err := rows.Scan(&s.ID, &s.Label, &s.Value, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("scan impact stat failed: %w", err)
		}
		result = append(result, &s)
	}

	return result, nil
}
