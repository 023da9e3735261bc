package pipeline

import (
	"context"

	"github.com/matzehuels/treemap/pkg/fstree"
	"github.com/matzehuels/treemap/pkg/treemap"
)

// Scan walks opts.Path into a tree.
func Scan(ctx context.Context, opts Options) (*treemap.Tree, error) {
	if err := opts.ValidateForScan(); err != nil {
		return nil, err
	}
	opts.SetLayoutDefaults()
	return fstree.Build(ctx, opts.Path, fstree.Options{
		Ignore:         opts.Ignore,
		FollowSymlinks: opts.FollowSymlinks,
		Seed:           opts.Seed,
		Logger:         opts.Logger,
	})
}
