package dataset

import (
	"context"
	"reflect"
	"testing"
)

func TestDedupeAliases(t *testing.T) {
	tests := []struct {
		name    string
		aliases []Alias
		want    map[string]string
	}{
		{
			name: "original flag wins over ordering",
			aliases: []Alias{
				{TitleID: "t1", Ordering: 1, Text: "First"},
				{TitleID: "t1", Ordering: 9, Text: "Original", Original: true},
			},
			want: map[string]string{"t1": "Original"},
		},
		{
			name: "smallest ordering among equal flags",
			aliases: []Alias{
				{TitleID: "t1", Ordering: 4, Text: "Later"},
				{TitleID: "t1", Ordering: 2, Text: "Earlier"},
			},
			want: map[string]string{"t1": "Earlier"},
		},
		{
			name: "full tie keeps the first row encountered",
			aliases: []Alias{
				{TitleID: "t1", Ordering: 2, Text: "Seen first"},
				{TitleID: "t1", Ordering: 2, Text: "Seen second"},
			},
			want: map[string]string{"t1": "Seen first"},
		},
		{
			name: "independent per title",
			aliases: []Alias{
				{TitleID: "t2", Ordering: 1, Text: "B"},
				{TitleID: "t1", Ordering: 1, Text: "A", Original: true},
				{TitleID: "t2", Ordering: 0, Text: "B0"},
			},
			want: map[string]string{"t1": "A", "t2": "B0"},
		},
		{
			name:    "empty input",
			aliases: nil,
			want:    map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DedupeAliases(tt.aliases)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadRegionAliases(t *testing.T) {
	path := writeTSV(t, "title.akas.tsv",
		"titleId\tordering\ttitle\tregion\tisOriginalTitle\n"+
			"t1\t1\tLocal One\tIN\t0\n"+
			"t1\t2\tElsewhere\tUS\t0\n"+
			"t2\t1\tLocal Two\tIN\t\\N\n"+
			"t3\t1\tOriginal Three\tIN\t1\n")
	got, err := LoadRegionAliases(context.Background(), path, "IN")
	if err != nil {
		t.Fatalf("LoadRegionAliases: %v", err)
	}
	want := []Alias{
		{TitleID: "t1", Ordering: 1, Text: "Local One"},
		{TitleID: "t2", Ordering: 1, Text: "Local Two"}, // missing flag counts as not-original
		{TitleID: "t3", Ordering: 1, Text: "Original Three", Original: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadMovieTitlesFilters(t *testing.T) {
	path := writeTSV(t, "title.basics.tsv",
		"tconst\ttitleType\tprimaryTitle\tisAdult\n"+
			"t1\tmovie\tKept\t0\n"+
			"t2\tshort\tWrong Kind\t0\n"+
			"t3\tmovie\tAdult\t1\n"+
			"t4\tmovie\tAlso Kept\t\\N\n")
	got, err := LoadMovieTitles(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadMovieTitles: %v", err)
	}
	want := map[string]string{"t1": "Kept", "t4": "Also Kept"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadRatingsThresholdInclusive(t *testing.T) {
	path := writeTSV(t, "title.ratings.tsv",
		"tconst\taverageRating\tnumVotes\n"+
			"t1\t7.1\t500\n"+
			"t2\t6.2\t499\n"+
			"t3\t8.3\t501\n")
	got, err := LoadRatings(context.Background(), path, 500)
	if err != nil {
		t.Fatalf("LoadRatings: %v", err)
	}
	want := []Rating{
		{ID: "t1", Average: 7.1, Votes: 500},
		{ID: "t3", Average: 8.3, Votes: 501},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadCreditsDropsMissingDirectors(t *testing.T) {
	path := writeTSV(t, "title.crew.tsv",
		"tconst\tdirectors\n"+
			"t1\tnm1,nm2\n"+
			"t2\t\\N\n"+
			"t3\tnm3\n")
	got, err := LoadCredits(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadCredits: %v", err)
	}
	want := []Credit{
		{TitleID: "t1", Directors: "nm1,nm2"},
		{TitleID: "t3", Directors: "nm3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadPersonNamesRestrictsToWanted(t *testing.T) {
	path := writeTSV(t, "name.basics.tsv",
		"nconst\tprimaryName\n"+
			"nm1\tAlice Example\n"+
			"nm2\tBob Example\n"+
			"nm3\tCarol Example\n")
	got, err := LoadPersonNames(context.Background(), path, map[string]struct{}{"nm1": {}, "nm3": {}})
	if err != nil {
		t.Fatalf("LoadPersonNames: %v", err)
	}
	want := map[string]string{"nm1": "Alice Example", "nm3": "Carol Example"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	empty, err := LoadPersonNames(context.Background(), path, nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty wanted set: got %v, %v", empty, err)
	}
}
