package pagination

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	cases := []struct {
		name        string
		page, limit int
		wantPage    int64
		wantLimit   int64
		wantSkip    int64
	}{
		{"zero values", 0, 0, 1, 10, 0},
		{"negative values", -3, -1, 1, 10, 0},
		{"explicit", 3, 10, 3, 10, 20},
		{"first page", 1, 25, 1, 25, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Normalize(tc.page, tc.limit)
			if p.Page != tc.wantPage || p.Limit != tc.wantLimit {
				t.Fatalf("got page=%d limit=%d, want page=%d limit=%d", p.Page, p.Limit, tc.wantPage, tc.wantLimit)
			}
			if p.Skip() != tc.wantSkip {
				t.Fatalf("got skip=%d, want %d", p.Skip(), tc.wantSkip)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, limit, want int64
	}{
		{25, 10, 3},
		{30, 10, 3},
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}
