/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package paging

import "testing"

func TestFilterSortAscending(t *testing.T) {
	tests := []struct {
		name   string
		sortAs string
		want   bool
	}{
		{name: "ascending constant", sortAs: SortAscending, want: true},
		{name: "lower case", sortAs: "asc", want: true},
		{name: "mixed case", sortAs: "aSc", want: true},
		{name: "descending constant", sortAs: SortDescending, want: false},
		{name: "empty", sortAs: "", want: false},
		{name: "blank", sortAs: " ", want: false},
		{name: "unknown token", sortAs: "any-value", want: false},
		{name: "ascending word", sortAs: "ascending", want: false},
		{name: "padded", sortAs: " ASC ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Filter{SortAs: tt.sortAs}
			if got := f.SortAscending(); got != tt.want {
				t.Fatalf("SortAscending() for %q = %v, want %v", tt.sortAs, got, tt.want)
			}
			// normalization is pure: asking twice gives the same answer
			if again := f.SortAscending(); again != tt.want {
				t.Fatalf("second SortAscending() for %q = %v, want %v", tt.sortAs, again, tt.want)
			}
		})
	}
}

func TestFilterZeroValueIsDescending(t *testing.T) {
	var f Filter
	if f.SortAscending() {
		t.Fatal("zero Filter should sort descending")
	}
}
