package fstree

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/treemap/pkg/treemap"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0.00B"},
		{1023, "1023.00B"},
		{1024, "1.00kB"},
		{1229, "1.20kB"},
		{2 * 1024 * 1024, "2.00MB"},
		{5 * 1024 * 1024 * 1024, "5.00GB"},
		{3 << 40, "3.00TB"},
		{2048 << 40, "2048.00TB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.in), "FormatSize(%d)", tt.in)
	}
}

func TestEntitySuffix(t *testing.T) {
	tr := treemap.New("src", Entity{Path: "/p/src"}, 0)
	tr.AddChild(tr.Root(), "a.go", Entity{Path: "/p/src/a.go"}, 1024*1024)
	tr.AddChild(tr.Root(), "b.go", Entity{Path: "/p/src/b.go"}, 1024*1024)
	leaf := tr.AddChild(tr.Root(), "c.go", Entity{Path: "/p/src/c.go"}, 1229)
	tr.RecomputeSizes(tr.Root())

	root := tr.Node(tr.Root())
	assert.Equal(t, " (folder, 3 items, 2.00MB)", root.Entity().Suffix(root))

	n := tr.Node(leaf)
	assert.Equal(t, " (file, 1.20kB)", n.Entity().Suffix(n))
	assert.Empty(t, Entity{}.Suffix(nil))
}

func TestEntityIdentity(t *testing.T) {
	e := Entity{Path: "/p/src/a.go"}
	assert.Equal(t, string(os.PathSeparator), e.Separator())
	assert.Equal(t, "/p/src/a.go", e.CanonicalID())
}
