package ports

import (
	"context"

	"github.com/showcatalog/catalog-api/internal/core/domain"
)

// ShowRepository defines the interface for show catalog queries.
type ShowRepository interface {
	// Search returns the shows matching every filter by equality, ordered
	// by show_id, sliced by limit/offset. Filter keys are shows columns.
	Search(ctx context.Context, filters map[string]any, limit, offset int) ([]domain.Show, error)
}
