package handler

import (
	"errors"
	"time"

	"github.com/showcatalog/catalog-api/internal/core/domain"
	"github.com/showcatalog/catalog-api/internal/core/ports"
)

const dateAddedLayout = "2006-01-02"

// --- Request → Service input ---

// toSearchInput collects the present filter fields into the sparse filter map
// keyed by shows column name. date_added is parsed here so a malformed date
// fails at the boundary, not inside the query.
func toSearchInput(req searchShowsRequest) (ports.SearchShowsInput, error) {
	filters := make(map[string]any)

	put := func(col string, v *string) {
		if v != nil {
			filters[col] = *v
		}
	}
	put("show_id", req.ShowID)
	put("type", req.Type)
	put("title", req.Title)
	put("director", req.Director)
	put("cast", req.Cast)
	put("rating", req.Rating)
	put("duration", req.Duration)
	put("description", req.Description)
	put("country", req.Country)
	put("listed_in", req.ListedIn)

	if req.ReleaseYear != nil {
		filters["release_year"] = *req.ReleaseYear
	}
	if req.DateAdded != nil {
		added, err := time.Parse(dateAddedLayout, *req.DateAdded)
		if err != nil {
			return ports.SearchShowsInput{}, errors.New("date_added must be formatted as YYYY-MM-DD")
		}
		filters["date_added"] = added
	}

	return ports.SearchShowsInput{
		Filters: filters,
		Limit:   *req.Limit,
		Offset:  *req.Offset,
	}, nil
}

// --- Service result → HTTP response ---

func toShowsResponse(shows []domain.Show) []showResponse {
	out := make([]showResponse, len(shows))
	for i, s := range shows {
		out[i] = showResponse{
			ShowID:      s.ShowID,
			Type:        s.Type,
			Title:       s.Title,
			Director:    s.Director,
			Cast:        s.Cast,
			DateAdded:   s.DateAdded.Format(dateAddedLayout),
			ReleaseYear: s.ReleaseYear,
			Rating:      s.Rating,
			Duration:    s.Duration,
			Description: s.Description,
			Country:     s.Country,
			ListedIn:    s.ListedIn,
		}
	}
	return out
}
