package treemap

import (
	"fmt"
	"testing"
)

type dirEntity struct{ name string }

func (d dirEntity) Separator() string { return "/" }
func (d dirEntity) Suffix(n *Node) string {
	return fmt.Sprintf(" (%d items)", n.NumChildren())
}
func (d dirEntity) CanonicalID() string { return d.name }

func TestPathString(t *testing.T) {
	tr := New("home", nil, 0)
	docs := tr.AddChild(tr.Root(), "docs", nil, 0)
	file := tr.AddChild(docs, "notes.txt", nil, 12)

	tests := []struct {
		id   NodeID
		want string
	}{
		{tr.Root(), "home"},
		{docs, "home/docs"},
		{file, "home/docs/notes.txt"},
		{42, ""},
	}
	for _, tt := range tests {
		if got := tr.PathString(tt.id); got != tt.want {
			t.Errorf("PathString(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestDisplayText(t *testing.T) {
	tr := New("workshop", dirEntity{"workshop"}, 0)
	dir := tr.AddChild(tr.Root(), "activities", dirEntity{"activities"}, 0)
	tr.AddChild(dir, "a.txt", nil, 3)

	tests := []struct {
		name   string
		maxLen int
		want   string
	}{
		{"fits", 100, "workshop/activities (1 items)"},
		{"one round", 28, "workshop/activit.. (1 items)"},
		{"two rounds", 27, "workshop/activi.. (1 items)"},
		{"cannot shrink below three", 5, "w../a.. (1 items)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.DisplayText(dir, tt.maxLen); got != tt.want {
				t.Errorf("DisplayText(%d) = %q, want %q", tt.maxLen, got, tt.want)
			}
		})
	}
}
