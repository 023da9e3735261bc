package fstree

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/treemap/pkg/treemap"
)

// Entity is the filesystem node variant: a file or directory identified by
// its absolute path.
type Entity struct {
	Path string
}

// Separator returns the operating system's path separator.
func (e Entity) Separator() string { return string(os.PathSeparator) }

// Suffix describes n as " (file, <size>)" or " (folder, <k> items, <size>)".
func (e Entity) Suffix(n *treemap.Node) string {
	if n == nil {
		return ""
	}
	parts := make([]string, 0, 3)
	if n.IsLeaf() {
		parts = append(parts, "file")
	} else {
		parts = append(parts, "folder", fmt.Sprintf("%d items", n.NumChildren()))
	}
	parts = append(parts, FormatSize(n.Size()))
	return " (" + strings.Join(parts, ", ") + ")"
}

// CanonicalID returns the absolute path.
func (e Entity) CanonicalID() string { return e.Path }

var sizeUnits = []string{"B", "kB", "MB", "GB", "TB"}

// FormatSize renders a byte count with two decimals, stepping units by
// 1024 up to TB.
func FormatSize(n int64) string {
	v := float64(n)
	unit := 0
	for v >= 1024 && unit < len(sizeUnits)-1 {
		v /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f%s", v, sizeUnits[unit])
}

var _ treemap.Entity = Entity{}
