package domain

import (
	"errors"
	"time"
)

var ErrUnknownFilterField = errors.New("unknown filter field")

// Show is a catalog entry, either a movie or a series. Rows are read-only
// in this service; the table is populated out of band.
type Show struct {
	ShowID      string    `json:"show_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Director    string    `json:"director"`
	Cast        string    `json:"cast"`
	DateAdded   time.Time `json:"date_added"`
	ReleaseYear int       `json:"release_year"`
	Rating      string    `json:"rating"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	Country     string    `json:"country"`
	ListedIn    string    `json:"listed_in"`
}

// FilterColumns lists the shows columns that accept equality filters, in the
// order predicates are rendered into SQL. Pagination keys (limit, offset)
// are deliberately absent — they are never equality fields.
var FilterColumns = []string{
	"show_id",
	"type",
	"title",
	"director",
	"cast",
	"date_added",
	"release_year",
	"rating",
	"duration",
	"description",
	"country",
	"listed_in",
}

// IsFilterColumn reports whether name is a filterable shows column.
func IsFilterColumn(name string) bool {
	for _, col := range FilterColumns {
		if col == name {
			return true
		}
	}
	return false
}
