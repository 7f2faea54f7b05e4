package service

import "testing"

func TestUpdateColumnsPartialUpdate(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		wantTitle   bool
		wantDesc    bool
	}{
		{"both fields", "t", "d", true, true},
		{"title only", "t", "", true, false},
		{"description only", "", "d", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates := updateColumns(tt.title, tt.description, "http://host/picture/thumbnail/x.jpg")

			if _, ok := updates["title"]; ok != tt.wantTitle {
				t.Errorf("title present = %v, want %v", ok, tt.wantTitle)
			}
			if _, ok := updates["description"]; ok != tt.wantDesc {
				t.Errorf("description present = %v, want %v", ok, tt.wantDesc)
			}
			if _, ok := updates["cover_url"]; !ok {
				t.Error("cover_url must always be present")
			}
			if tt.wantTitle && updates["title"] != tt.title {
				t.Errorf("title = %v, want %q", updates["title"], tt.title)
			}
			if tt.wantDesc && updates["description"] != tt.description {
				t.Errorf("description = %v, want %q", updates["description"], tt.description)
			}
		})
	}
}
