// Package join builds the derived analysis rows by joining the loaded
// tables in memory. Ratings drive both pipelines, so output order follows
// the ratings file and stays deterministic across runs.
package join

import (
	"strings"

	"github.com/zeebo/xxh3"

	"titlestats/internal/dataset"
	apperr "titlestats/internal/errors"
)

// UnknownName substitutes for a director with no person-basics row.
const UnknownName = "(unknown)"

// directorDelim separates director ids inside a credit row.
const directorDelim = ","

// Row is one rated title with its chosen display text, ready for
// classification.
type Row struct {
	TitleID string
	Title   string
	Rating  float64
	Votes   int64
}

// DirectorRow is one (director, rated title) pair produced by exploding the
// credit list. Pairs are unique: a title contributes at most once per
// director even when the credit list repeats an id.
type DirectorRow struct {
	DirectorID string
	Name       string
	TitleID    string
	Title      string
	Rating     float64
	Votes      int64
}

// RegionRows inner-joins ratings with the movie title table and the
// per-region preferred alias mapping. The chosen title is the alias text
// when it carries a value, otherwise the primary title. Returns an
// EMPTY_RESULT error when no row survives the join.
func RegionRows(ratings []dataset.Rating, titles, preferred map[string]string) ([]Row, error) {
	out := make([]Row, 0, len(preferred))
	for _, r := range ratings {
		title, ok := titles[r.ID]
		if !ok {
			continue
		}
		alias, ok := preferred[r.ID]
		if !ok {
			continue
		}
		chosen := alias
		if dataset.Missing(chosen) {
			chosen = title
		}
		out = append(out, Row{TitleID: r.ID, Title: chosen, Rating: r.Average, Votes: r.Votes})
	}
	if len(out) == 0 {
		return nil, apperr.NewEmptyResultError("no titles matched the rating, kind, and region filters")
	}
	return out, nil
}

// SplitDirectors explodes a delimited director list into individual ids,
// dropping empty tokens.
func SplitDirectors(list string) []string {
	var ids []string
	for _, tok := range strings.Split(list, directorDelim) {
		if tok != "" {
			ids = append(ids, tok)
		}
	}
	return ids
}

// pairKey hashes a (directorId, titleId) pair for the dedup set. The unit
// separator keeps ("ab","c") and ("a","bc") distinct.
func pairKey(directorID, titleID string) uint64 {
	return xxh3.HashString(directorID + "\x1f" + titleID)
}

// DirectorRows inner-joins ratings with the movie title table, explodes the
// credit lists into (director, title) pairs, and left-joins person names,
// substituting UnknownName when a director has no name row. Duplicate
// (director, title) pairs keep their first occurrence. Returns an
// EMPTY_RESULT error when no pair survives.
func DirectorRows(
	ratings []dataset.Rating,
	titles map[string]string,
	credits []dataset.Credit,
	names map[string]string,
) ([]DirectorRow, error) {
	directorsByTitle := make(map[string][]string, len(credits))
	for _, c := range credits {
		if ids := SplitDirectors(c.Directors); len(ids) > 0 {
			directorsByTitle[c.TitleID] = ids
		}
	}

	seen := make(map[uint64]struct{})
	var out []DirectorRow
	for _, r := range ratings {
		title, ok := titles[r.ID]
		if !ok {
			continue
		}
		for _, directorID := range directorsByTitle[r.ID] {
			key := pairKey(directorID, r.ID)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			name, ok := names[directorID]
			if !ok || dataset.Missing(name) {
				name = UnknownName
			}
			out = append(out, DirectorRow{
				DirectorID: directorID,
				Name:       name,
				TitleID:    r.ID,
				Title:      title,
				Rating:     r.Average,
				Votes:      r.Votes,
			})
		}
	}
	if len(out) == 0 {
		return nil, apperr.NewEmptyResultError("no rated movies with director credits matched the filters")
	}
	return out, nil
}

// DirectorIDs collects the distinct director ids appearing in credits, for
// restricting the person-basics load to ids that can actually join.
func DirectorIDs(credits []dataset.Credit) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, c := range credits {
		for _, id := range SplitDirectors(c.Directors) {
			ids[id] = struct{}{}
		}
	}
	return ids
}
