package handlers

import "testing"

func TestUserFilterId(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"", 0},
		{"42", 42},
		{"not-a-number", 0},
		{"-7", 0},
		{"0", 0},
	}
	for _, tt := range tests {
		if got := userFilterId(tt.raw); got != tt.want {
			t.Errorf("userFilterId(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
