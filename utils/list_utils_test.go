package utils

import (
	"slices"
	"testing"
	"time"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestMatchesQuery(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{"empty query matches", "", []string{"株式会社ウィステリア"}, true},
		{"whitespace query matches", "   ", []string{"株式会社ウィステリア"}, true},
		{"substring in first field", "ウィス", []string{"株式会社ウィステリア", ""}, true},
		{"substring in later field", "indeed", []string{"田中太郎", "Indeed経由"}, true},
		{"case insensitive", "INDEED", []string{"indeed経由"}, true},
		{"no field matches", "リクナビ", []string{"田中太郎", "Indeed経由"}, false},
		{"no fields at all", "x", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesQuery(tt.query, tt.fields...); got != tt.want {
				t.Errorf("MatchesQuery(%q, %v) = %v, want %v", tt.query, tt.fields, got, tt.want)
			}
		})
	}
}

func TestHasAllTags(t *testing.T) {
	have := []string{"IT", "大手", "継続"}

	if !HasAllTags(nil, have) {
		t.Error("no selection should match")
	}
	if !HasAllTags([]string{"IT"}, have) {
		t.Error("single present tag should match")
	}
	if !HasAllTags([]string{"IT", "継続"}, have) {
		t.Error("subset should match")
	}
	if HasAllTags([]string{"IT", "医療"}, have) {
		t.Error("partially missing selection should not match")
	}
	if HasAllTags([]string{"医療"}, nil) {
		t.Error("selection against no tags should not match")
	}
}

func TestInDateRange(t *testing.T) {
	applied := time.Date(2026, 8, 10, 14, 30, 0, 0, time.UTC)
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	if !InDateRange(applied, timePtr(from), timePtr(to)) {
		t.Error("afternoon of the to-date should be inside the range")
	}
	if !InDateRange(applied, nil, nil) {
		t.Error("open range should match")
	}
	if InDateRange(applied, timePtr(time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC)), nil) {
		t.Error("before from should be outside")
	}
	if InDateRange(applied, nil, timePtr(time.Date(2026, 8, 9, 0, 0, 0, 0, time.UTC))) {
		t.Error("after end of to-day should be outside")
	}
}

func TestFilterAll(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}

	even := func(n int) bool { return n%2 == 0 }
	big := func(n int) bool { return n > 3 }

	got := FilterAll(items, even, big)
	if !slices.Equal(got, []int{4, 6}) {
		t.Errorf("FilterAll = %v, want [4 6]", got)
	}

	if got := FilterAll(items); !slices.Equal(got, items) {
		t.Errorf("no predicates should keep everything, got %v", got)
	}
}

func TestSortStableBy(t *testing.T) {
	type row struct {
		name string
		rank int
	}
	items := []row{{"a", 2}, {"b", 1}, {"c", 2}, {"d", 1}}

	sorted := SortStableBy(items, func(x, y row) bool { return x.rank < y.rank })

	wantOrder := []string{"b", "d", "a", "c"}
	for i, want := range wantOrder {
		if sorted[i].name != want {
			t.Errorf("position %d = %q, want %q (ties must keep input order)", i, sorted[i].name, want)
		}
	}

	if items[0].name != "a" {
		t.Error("input slice must not be mutated")
	}
}

func TestCompareNames(t *testing.T) {
	if CompareNames("あおき", "さとう") >= 0 {
		t.Error("あおき should sort before さとう")
	}
	if CompareNames("同名", "同名") != 0 {
		t.Error("identical names should compare equal")
	}
}

func TestParsePageLimit(t *testing.T) {
	tests := []struct {
		pageStr, limitStr string
		wantPage, wantLim int
	}{
		{"", "", 1, LIST_DEFAULT_LIMIT},
		{"3", "50", 3, 50},
		{"0", "0", 1, LIST_DEFAULT_LIMIT},
		{"-2", "-5", 1, LIST_DEFAULT_LIMIT},
		{"abc", "xyz", 1, LIST_DEFAULT_LIMIT},
		{"2", "500", 2, LIST_MAX_LIMIT},
	}

	for _, tt := range tests {
		page, limit := ParsePageLimit(tt.pageStr, tt.limitStr)
		if page != tt.wantPage || limit != tt.wantLim {
			t.Errorf("ParsePageLimit(%q, %q) = (%d, %d), want (%d, %d)",
				tt.pageStr, tt.limitStr, page, limit, tt.wantPage, tt.wantLim)
		}
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i
	}

	t.Run("first page", func(t *testing.T) {
		page, pagination := Paginate(items, 1, 20)
		if len(page) != 20 || page[0] != 0 || page[19] != 19 {
			t.Errorf("unexpected page contents: %v", page)
		}
		if pagination.TotalCount != 45 || pagination.TotalPages != 3 {
			t.Errorf("pagination = %+v", pagination)
		}
		if !pagination.HasNextPage || pagination.HasPreviousPage {
			t.Errorf("first-page flags wrong: %+v", pagination)
		}
	})

	t.Run("last partial page", func(t *testing.T) {
		page, pagination := Paginate(items, 3, 20)
		if len(page) != 5 || page[0] != 40 {
			t.Errorf("unexpected page contents: %v", page)
		}
		if pagination.HasNextPage || !pagination.HasPreviousPage {
			t.Errorf("last-page flags wrong: %+v", pagination)
		}
	})

	t.Run("page past the end", func(t *testing.T) {
		page, pagination := Paginate(items, 10, 20)
		if len(page) != 0 {
			t.Errorf("out-of-range page should be empty, got %v", page)
		}
		if pagination.HasNextPage {
			t.Errorf("out-of-range page should have no next: %+v", pagination)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		page, pagination := Paginate([]int{}, 1, 20)
		if len(page) != 0 || pagination.TotalCount != 0 || pagination.TotalPages != 0 {
			t.Errorf("empty input: page %v pagination %+v", page, pagination)
		}
	})
}
