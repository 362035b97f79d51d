package dataset

// Typed records for the entities the analyses consume. Fields are parsed and
// validated once at load time; downstream code never touches raw cells.

// Alias is one regional title row from the title-alias file. Many aliases can
// exist per title; exactly one per title survives deduplication.
type Alias struct {
	TitleID  string
	Ordering int
	Text     string
	Original bool
}

// Rating is one row from the title-ratings file, already past the vote
// threshold filter.
type Rating struct {
	ID      string
	Average float64
	Votes   int64
}

// Credit is one row from the title-credits file with a non-missing director
// list. Directors holds the raw delimited list; the join engine explodes it.
type Credit struct {
	TitleID   string
	Directors string
}

// Missing reports whether a loaded cell carried no value. The loader maps
// the \N sentinel (and cells absent from short rows) to the empty string.
func Missing(s string) bool { return s == "" }
