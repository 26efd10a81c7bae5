package postgres

import (
	"strings"
	"testing"
)

func TestBuildSearchQuery_NoFilters(t *testing.T) {
	query, args := buildSearchQuery(nil, 10, 0)

	if strings.Contains(query, "WHERE") {
		t.Fatalf("expected no WHERE clause, got:\n%s", query)
	}
	if !strings.Contains(query, "ORDER BY show_id") {
		t.Fatalf("expected stable ordering, got:\n%s", query)
	}
	if !strings.Contains(query, "LIMIT $1 OFFSET $2") {
		t.Fatalf("expected pagination placeholders, got:\n%s", query)
	}
	if len(args) != 2 || args[0] != 10 || args[1] != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildSearchQuery_FiltersInStableOrder(t *testing.T) {
	filters := map[string]any{
		"release_year": 2020,
		"type":         "Movie",
	}

	query, args := buildSearchQuery(filters, 10, 5)

	// "type" precedes "release_year" in the column whitelist, regardless of
	// map iteration order.
	if !strings.Contains(query, `"type" = $1 AND "release_year" = $2`) {
		t.Fatalf("unexpected WHERE clause:\n%s", query)
	}
	if !strings.Contains(query, "LIMIT $3 OFFSET $4") {
		t.Fatalf("unexpected pagination placeholders:\n%s", query)
	}
	want := []any{"Movie", 2020, 10, 5}
	if len(args) != len(want) {
		t.Fatalf("expected %d args, got %d", len(want), len(args))
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("arg %d: expected %v, got %v", i, want[i], args[i])
		}
	}
}

func TestBuildSearchQuery_QuotesReservedColumn(t *testing.T) {
	query, _ := buildSearchQuery(map[string]any{"cast": "Tom Hanks"}, 1, 0)

	if !strings.Contains(query, `"cast" = $1`) {
		t.Fatalf("expected quoted cast column:\n%s", query)
	}
}
