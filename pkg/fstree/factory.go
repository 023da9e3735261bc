package fstree

import (
	"context"

	"github.com/matzehuels/treemap/pkg/treemap"
)

// Factory rebuilds nodes from their absolute paths by walking the
// filesystem again with the same options.
type Factory struct {
	opts Options
}

// NewFactory returns a factory that builds with opts.
func NewFactory(opts Options) *Factory {
	return &Factory{opts: opts}
}

// Create builds the file or directory at path.
func (f *Factory) Create(path string) (*treemap.Tree, error) {
	return Build(context.Background(), path, f.opts)
}

var _ treemap.Factory = (*Factory)(nil)
