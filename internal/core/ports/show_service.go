package ports

import (
	"context"

	"github.com/showcatalog/catalog-api/internal/core/domain"
)

// SearchShowsInput carries a sparse set of equality filters plus pagination.
// Absent keys impose no constraint; all present predicates are AND-combined.
type SearchShowsInput struct {
	Filters map[string]any
	Limit   int
	Offset  int
}

type ShowService interface {
	// Search executes a filtered, paginated catalog query. An empty result
	// is a valid outcome, not an error.
	Search(ctx context.Context, in SearchShowsInput) ([]domain.Show, error)
}
