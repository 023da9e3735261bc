// Package fstree builds treemap trees from a directory on disk.
//
// Directories become internal nodes and regular files become leaves sized
// by their byte count. An empty directory is a leaf sized by its own
// directory entry, so it still occupies space in the layout.
//
// # Building
//
//	t, err := fstree.Build(ctx, "/home/me/projects", fstree.Options{
//	    Ignore: []string{".git", "node_modules"},
//	})
//
// The returned tree carries a [Factory] so that Move, Duplicate and
// CopyPaste can rebuild nodes from their absolute paths. Rebuilds read the
// filesystem again; they never touch it.
//
// # Entities
//
// Every node carries an [Entity] holding its absolute path. Paths are
// joined with the operating system's separator and suffixed with the node
// kind and a human-readable size:
//
//	projects/notes.txt (file, 1.20kB)
//	projects/src (folder, 3 items, 2.00MB)
package fstree
