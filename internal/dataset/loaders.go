package dataset

import (
	"context"
	"fmt"
	"sort"
	"strconv"
)

// Required column sets per file. Header validation happens in Load; any
// absent column is a SCHEMA error before a single data row is parsed.
var (
	aliasColumns   = []string{"titleId", "ordering", "title", "region", "isOriginalTitle"}
	basicsColumns  = []string{"tconst", "titleType", "primaryTitle", "isAdult"}
	ratingsColumns = []string{"tconst", "averageRating", "numVotes"}
	crewColumns    = []string{"tconst", "directors"}
	nameColumns    = []string{"nconst", "primaryName"}
)

// LoadRegionAliases streams the title-alias file and returns the rows whose
// region equals region, in file order.
func LoadRegionAliases(ctx context.Context, path, region string) ([]Alias, error) {
	rows, err := Load(ctx, path, aliasColumns, func(row []string) bool {
		return row[3] == region
	})
	if err != nil {
		return nil, err
	}
	out := make([]Alias, 0, len(rows))
	for _, row := range rows {
		ordering := 0
		if !Missing(row[1]) {
			ordering, err = strconv.Atoi(row[1])
			if err != nil {
				return nil, fmt.Errorf("parse ordering %q in %s: %w", row[1], path, err)
			}
		}
		out = append(out, Alias{
			TitleID:  row[0],
			Ordering: ordering,
			Text:     row[2],
			// A missing flag counts as "not the original title".
			Original: row[4] == "1",
		})
	}
	return out, nil
}

// DedupeAliases picks one preferred alias text per title: original-title rows
// win over the rest, ties fall to the smallest ordering, and remaining ties
// keep the row seen first (the sort is stable). The result maps titleId to
// the chosen text; it is empty when aliases is empty.
func DedupeAliases(aliases []Alias) map[string]string {
	sorted := make([]Alias, len(aliases))
	copy(sorted, aliases)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.TitleID != b.TitleID {
			return a.TitleID < b.TitleID
		}
		if a.Original != b.Original {
			return a.Original
		}
		return a.Ordering < b.Ordering
	})
	preferred := make(map[string]string, len(sorted))
	for _, a := range sorted {
		if _, seen := preferred[a.TitleID]; !seen {
			preferred[a.TitleID] = a.Text
		}
	}
	return preferred
}

// LoadMovieTitles streams the title-basics file and returns the primary title
// per id for non-adult movies. Every other title kind is dropped during
// loading.
func LoadMovieTitles(ctx context.Context, path string) (map[string]string, error) {
	rows, err := Load(ctx, path, basicsColumns, func(row []string) bool {
		return row[1] == "movie" && row[3] != "1"
	})
	if err != nil {
		return nil, err
	}
	titles := make(map[string]string, len(rows))
	for _, row := range rows {
		titles[row[0]] = row[2]
	}
	return titles, nil
}

// LoadRatings streams the title-ratings file and returns rows with at least
// minVotes votes (inclusive), in file order.
func LoadRatings(ctx context.Context, path string, minVotes int64) ([]Rating, error) {
	rows, err := Load(ctx, path, ratingsColumns, nil)
	if err != nil {
		return nil, err
	}
	out := make([]Rating, 0, len(rows))
	for _, row := range rows {
		if Missing(row[1]) || Missing(row[2]) {
			continue
		}
		avg, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parse averageRating %q in %s: %w", row[1], path, err)
		}
		votes, err := strconv.ParseInt(row[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse numVotes %q in %s: %w", row[2], path, err)
		}
		if votes < minVotes {
			continue
		}
		out = append(out, Rating{ID: row[0], Average: avg, Votes: votes})
	}
	return out, nil
}

// LoadCredits streams the title-credits file and returns the rows that carry
// a director list.
func LoadCredits(ctx context.Context, path string) ([]Credit, error) {
	rows, err := Load(ctx, path, crewColumns, func(row []string) bool {
		return !Missing(row[1])
	})
	if err != nil {
		return nil, err
	}
	out := make([]Credit, 0, len(rows))
	for _, row := range rows {
		out = append(out, Credit{TitleID: row[0], Directors: row[1]})
	}
	return out, nil
}

// LoadPersonNames streams the person-basics file and returns displayName per
// personId, restricted to the wanted id set so the name table is never
// materialized in full. An empty wanted set short-circuits to an empty map.
func LoadPersonNames(ctx context.Context, path string, wanted map[string]struct{}) (map[string]string, error) {
	if len(wanted) == 0 {
		return map[string]string{}, nil
	}
	rows, err := Load(ctx, path, nameColumns, func(row []string) bool {
		_, ok := wanted[row[0]]
		return ok
	})
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rows))
	for _, row := range rows {
		names[row[0]] = row[1]
	}
	return names, nil
}
