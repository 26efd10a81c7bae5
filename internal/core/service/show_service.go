package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/showcatalog/catalog-api/internal/core/domain"
	"github.com/showcatalog/catalog-api/internal/core/ports"
)

// ShowService executes filtered catalog searches.
type ShowService struct {
	repo ports.ShowRepository
	log  zerolog.Logger
}

func NewShowService(repo ports.ShowRepository, log zerolog.Logger) *ShowService {
	return &ShowService{repo: repo, log: log}
}

// Search validates the filter keys against the shows column whitelist and
// delegates to the repository. The validation layer already rejects unknown
// keys at the boundary; the check here protects non-HTTP callers.
func (s *ShowService) Search(ctx context.Context, in ports.SearchShowsInput) ([]domain.Show, error) {
	for key := range in.Filters {
		if !domain.IsFilterColumn(key) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownFilterField, key)
		}
	}

	shows, err := s.repo.Search(ctx, in.Filters, in.Limit, in.Offset)
	if err != nil {
		s.log.Error().Err(err).Int("filters", len(in.Filters)).Msg("show search failed")
		return nil, err
	}

	s.log.Debug().
		Int("filters", len(in.Filters)).
		Int("limit", in.Limit).
		Int("offset", in.Offset).
		Int("results", len(shows)).
		Msg("show search executed")

	return shows, nil
}
