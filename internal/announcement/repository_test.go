package announcement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQueryDefaults(t *testing.T) {
	sql, args, err := buildListQuery(Filter{})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, title, description, event_venue, event_date, brochure_file_id, created_at, updated_at, count(*) OVER() as total_count "+
			"FROM public.announcements "+
			"ORDER BY created_at DESC, seq ASC "+
			"LIMIT 20 OFFSET 0",
		sql)
	assert.Empty(t, args)
}

func TestBuildListQueryStatus(t *testing.T) {
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	t.Run("upcoming keeps events on or after today", func(t *testing.T) {
		sql, args, err := buildListQuery(Filter{Status: StatusUpcoming, Today: today})
		require.NoError(t, err)

		assert.Contains(t, sql, "WHERE event_date >= $1")
		require.Len(t, args, 1)
		assert.Equal(t, today, args[0])
	})

	t.Run("past keeps events strictly before today", func(t *testing.T) {
		sql, args, err := buildListQuery(Filter{Status: StatusPast, Today: today})
		require.NoError(t, err)

		assert.Contains(t, sql, "WHERE event_date < $1")
		require.Len(t, args, 1)
		assert.Equal(t, today, args[0])
	})

	t.Run("all adds no date predicate", func(t *testing.T) {
		sql, _, err := buildListQuery(Filter{Status: StatusAll, Today: today})
		require.NoError(t, err)

		assert.NotContains(t, sql, "event_date >=")
		assert.NotContains(t, sql, "event_date <")
	})
}

func TestBuildListQueryKeyword(t *testing.T) {
	sql, args, err := buildListQuery(Filter{Keyword: "gala"})
	require.NoError(t, err)

	assert.Contains(t, sql, "(title ILIKE $1 OR description ILIKE $2 OR event_venue ILIKE $3)")
	assert.Equal(t, []any{"%gala%", "%gala%", "%gala%"}, args)
}

func TestBuildListQuerySorting(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		wantOrder string
	}{
		{"default is newest first", "", "", "ORDER BY created_at DESC, seq ASC"},
		{"event date ascending", "event_date", "ASC", "ORDER BY event_date ASC, created_at ASC, seq ASC"},
		{"title descending", "title", "DESC", "ORDER BY title DESC, created_at ASC, seq ASC"},
		{"created_at ascending", "created_at", "ASC", "ORDER BY created_at ASC, seq ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _, err := buildListQuery(Filter{SortBy: tt.sortBy, SortOrder: tt.sortOrder})
			require.NoError(t, err)
			assert.Contains(t, sql, tt.wantOrder)
		})
	}
}

func TestBuildListQueryPagination(t *testing.T) {
	sql, _, err := buildListQuery(Filter{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Contains(t, sql, "LIMIT 10 OFFSET 20")

	// Out-of-range values are clamped rather than producing a bad offset.
	sql, _, err = buildListQuery(Filter{Page: 0, PageSize: -5})
	require.NoError(t, err)
	assert.Contains(t, sql, "LIMIT 20 OFFSET 0")
}

func TestBuildListQueryCombined(t *testing.T) {
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	sql, args, err := buildListQuery(Filter{
		Keyword:   "fundraiser",
		Status:    StatusUpcoming,
		Today:     today,
		SortBy:    "event_date",
		SortOrder: "ASC",
		Page:      2,
		PageSize:  5,
	})
	require.NoError(t, err)

	assert.Contains(t, sql, "(title ILIKE $1 OR description ILIKE $2 OR event_venue ILIKE $3)")
	assert.Contains(t, sql, "event_date >= $4")
	assert.Contains(t, sql, "ORDER BY event_date ASC, created_at ASC, seq ASC")
	assert.Contains(t, sql, "LIMIT 5 OFFSET 5")
	assert.Equal(t, []any{"%fundraiser%", "%fundraiser%", "%fundraiser%", today}, args)
}
