package service

import "testing"

func TestOrderBy(t *testing.T) {
	tests := []struct {
		sortBy   string
		sortType string
		want     string
	}{
		{"created_at", "asc", "created_at ASC"},
		{"created_at", "desc", "created_at DESC"},
		{"title", "asc", "title ASC"},
		{"visit_count", "desc", "visit_count DESC"},
		{"", "", "created_at DESC"},
		{"views; DROP TABLE videos", "asc", "created_at ASC"},
		{"title", "sideways", "title DESC"},
	}
	for _, tt := range tests {
		if got := OrderBy(tt.sortBy, tt.sortType); got != tt.want {
			t.Errorf("OrderBy(%q, %q) = %q, want %q", tt.sortBy, tt.sortType, got, tt.want)
		}
	}
}
