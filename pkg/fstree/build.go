package fstree

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	apperrors "github.com/matzehuels/treemap/pkg/errors"
	"github.com/matzehuels/treemap/pkg/treemap"
)

// Options controls a directory walk.
type Options struct {
	// Ignore holds filepath.Match patterns tested against each entry's base
	// name. Matching entries are skipped along with their contents. The
	// root itself is never ignored.
	Ignore []string

	// FollowSymlinks descends into symlinked directories and sizes
	// symlinked files by their target. Cycles are cut at the first
	// directory seen twice. When false, a symlink is a leaf sized by the
	// link itself.
	FollowSymlinks bool

	// Seed fixes the colours assigned to new nodes. Zero picks a random seed.
	Seed uint64

	// Logger receives debug records for skipped entries. Nil discards them.
	Logger *log.Logger
}

// Validate checks the ignore patterns.
func (o Options) Validate() error {
	for _, p := range o.Ignore {
		if err := apperrors.ValidateIgnorePattern(p); err != nil {
			return err
		}
	}
	return nil
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return o.Logger
}

// Build walks root and returns its tree. Children appear in lexical order
// of their names. Sizes are propagated but the tree is neither laid out nor
// coloured by depth; callers run RecomputeSizes, Layout and
// RefreshDisplayMetadata as usual.
//
// Entries that cannot be read below the root are skipped and logged at
// debug level. Build stops with ctx's error when ctx is cancelled.
func Build(ctx context.Context, root string, opts Options) (*treemap.Tree, error) {
	if err := apperrors.ValidatePath(root); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "resolve %s", root)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, statError(err, abs)
	}

	treeOpts := []treemap.Option{treemap.WithFactory(NewFactory(opts))}
	if opts.Seed != 0 {
		treeOpts = append(treeOpts, treemap.WithSeed(opts.Seed))
	}
	t := treemap.New(filepath.Base(abs), Entity{Path: abs}, info.Size(), treeOpts...)

	w := &walker{
		ctx:     ctx,
		opts:    opts,
		logger:  opts.logger(),
		tree:    t,
		visited: make(map[string]bool),
	}
	if info.IsDir() {
		w.markVisited(abs)
		if err := w.walkDir(t.Root(), abs); err != nil {
			return nil, err
		}
	}
	t.RecomputeSizes(t.Root())
	return t, nil
}

type walker struct {
	ctx     context.Context
	opts    Options
	logger  *log.Logger
	tree    *treemap.Tree
	visited map[string]bool
}

func (w *walker) walkDir(parent treemap.NodeID, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.logger.Debug("skip unreadable directory", "path", dir, "err", err)
		return nil
	}

	for _, e := range entries {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		if w.ignored(e.Name()) {
			w.logger.Debug("ignore", "path", filepath.Join(dir, e.Name()))
			continue
		}

		path := filepath.Join(dir, e.Name())
		info, err := w.stat(path, e)
		if err != nil {
			w.logger.Debug("skip entry", "path", path, "err", err)
			continue
		}

		id := w.tree.AddChild(parent, e.Name(), Entity{Path: path}, info.Size())
		if !info.IsDir() {
			continue
		}
		if w.opts.FollowSymlinks && !w.markVisited(path) {
			w.logger.Debug("skip symlink cycle", "path", path)
			continue
		}
		if err := w.walkDir(id, path); err != nil {
			return err
		}
	}
	return nil
}

// stat resolves symlinks only when FollowSymlinks is set.
func (w *walker) stat(path string, e fs.DirEntry) (fs.FileInfo, error) {
	if e.Type()&fs.ModeSymlink != 0 && w.opts.FollowSymlinks {
		return os.Stat(path)
	}
	return e.Info()
}

// markVisited records the real path of dir and reports whether it was new.
func (w *walker) markVisited(dir string) bool {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		resolved = dir
	}
	if w.visited[resolved] {
		return false
	}
	w.visited[resolved] = true
	return true
}

func (w *walker) ignored(name string) bool {
	for _, p := range w.opts.Ignore {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

func statError(err error, path string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "no such file or directory: %s", path)
	case errors.Is(err, fs.ErrPermission):
		return apperrors.Wrap(apperrors.ErrCodePermission, err, "cannot read %s", path)
	default:
		return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "stat %s", path)
	}
}
