// Package config resolves dataset file locations and holds the numeric
// analysis parameters. It is intentionally small and dependency-free: flags
// are parsed by the commands, validated here, and passed through the program
// without additional glue code.
package config

import (
	"os"
	"path/filepath"

	apperr "titlestats/internal/errors"
)

// Dataset file names, as shipped in the title dataset dumps.
const (
	AliasFile   = "title.akas.tsv"
	BasicsFile  = "title.basics.tsv"
	RatingsFile = "title.ratings.tsv"
	CrewFile    = "title.crew.tsv"
	NamesFile   = "name.basics.tsv"
)

// datasetDirDefaults are probed in order when no directory is given.
var datasetDirDefaults = []string{"datasets", "dataset"}

// Params are the recognized analysis options.
type Params struct {
	DatasetsDir string // empty means auto-detect
	Region      string // target release region for the letter analysis
	MinVotes    int64  // inclusive vote threshold per title
	MinMovies   int    // eligibility threshold per director
	TopN        int    // result row limit for the ranking
}

// Paths locates the dataset files for one run. Crew and Names are empty when
// the optional files are absent and were not required.
type Paths struct {
	Aliases string
	Basics  string
	Ratings string
	Crew    string
	Names   string
}

// DetectPaths resolves the dataset directory (explicit, or the first default
// that exists) and returns the file paths inside it. The two optional files
// are only demanded when the requested analysis needs them; their absence is
// then a CONFIG error. Presence of the three core files is checked by the
// loaders when they open them.
func DetectPaths(dir string, needCrew, needNames bool) (Paths, error) {
	if dir == "" {
		for _, candidate := range datasetDirDefaults {
			if info, err := os.Stat(candidate); err == nil && info.IsDir() {
				dir = candidate
				break
			}
		}
		if dir == "" {
			return Paths{}, apperr.NewConfigError(
				"dataset directory not found; pass -datasets-dir explicitly", nil)
		}
	} else if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return Paths{}, apperr.NewConfigError("dataset directory "+dir+" not found", err)
	}

	p := Paths{
		Aliases: filepath.Join(dir, AliasFile),
		Basics:  filepath.Join(dir, BasicsFile),
		Ratings: filepath.Join(dir, RatingsFile),
	}

	crew := filepath.Join(dir, CrewFile)
	if _, err := os.Stat(crew); err == nil {
		p.Crew = crew
	} else if needCrew {
		return Paths{}, apperr.NewConfigError(CrewFile+" is required for this analysis but was not found", err)
	}

	names := filepath.Join(dir, NamesFile)
	if _, err := os.Stat(names); err == nil {
		p.Names = names
	} else if needNames {
		return Paths{}, apperr.NewConfigError(NamesFile+" is required for this analysis but was not found", err)
	}
	return p, nil
}
