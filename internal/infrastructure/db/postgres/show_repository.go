package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/showcatalog/catalog-api/internal/core/domain"
)

type ShowRepository struct {
	pool *pgxpool.Pool
}

func NewShowRepository(pool *pgxpool.Pool) *ShowRepository {
	return &ShowRepository{pool: pool}
}

// Search runs an AND-combined equality query over the shows table, ordered
// by show_id for deterministic paging.
func (r *ShowRepository) Search(ctx context.Context, filters map[string]any, limit, offset int) ([]domain.Show, error) {
	query, args := buildSearchQuery(filters, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search shows: %w", err)
	}
	defer rows.Close()

	var shows []domain.Show
	for rows.Next() {
		var s domain.Show
		if err := rows.Scan(
			&s.ShowID, &s.Type, &s.Title, &s.Director, &s.Cast, &s.DateAdded,
			&s.ReleaseYear, &s.Rating, &s.Duration, &s.Description, &s.Country, &s.ListedIn,
		); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search shows: %w", err)
	}

	return shows, nil
}

// buildSearchQuery renders the filter map into a parameterized WHERE clause.
// Predicates follow domain.FilterColumns order so the same filters always
// produce the same SQL. Column names are identifier-quoted because "cast"
// collides with a SQL keyword.
func buildSearchQuery(filters map[string]any, limit, offset int) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT show_id, type, title, director, "cast", date_added,
	       release_year, rating, duration, description, country, listed_in
	FROM shows`)

	args := make([]any, 0, len(filters)+2)
	var conds []string
	for _, col := range domain.FilterColumns {
		v, ok := filters[col]
		if !ok {
			continue
		}
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("%q = $%d", col, len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString("\n\tWHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	args = append(args, limit)
	sb.WriteString(fmt.Sprintf("\n\tORDER BY show_id\n\tLIMIT $%d", len(args)))
	args = append(args, offset)
	sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))

	return sb.String(), args
}
