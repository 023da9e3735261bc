package cache

import (
	"encoding/json"
)

// Keyer builds cache keys. Implementations must be deterministic: equal
// inputs always produce equal keys.
type Keyer interface {
	// ArtifactKey returns the key for one rendered output of a display tree
	// whose content hash is blocksHash.
	ArtifactKey(blocksHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change the rendered bytes.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Labels bool   `json:"labels,omitempty"`
	Style  string `json:"style,omitempty"`
}

// DefaultKeyer builds "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey hashes the blocks hash together with opts.
func (DefaultKeyer) ArtifactKey(blocksHash string, opts ArtifactKeyOpts) string {
	// Marshalling a string and a flat struct cannot fail.
	data, _ := json.Marshal([]any{blocksHash, opts})
	return "artifact:" + Hash(data)
}

// ScopedKeyer prefixes every key of an inner keyer. The CLI scopes keys by
// build version so entries written by one release are never read by another:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version)
type ScopedKeyer struct {
	inner Keyer
	scope string
}

// NewScopedKeyer wraps inner (DefaultKeyer when nil). A non-empty scope is
// joined to the inner key with a colon.
func NewScopedKeyer(inner Keyer, scope string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return ScopedKeyer{inner: inner, scope: scope}
}

func (k ScopedKeyer) ArtifactKey(blocksHash string, opts ArtifactKeyOpts) string {
	key := k.inner.ArtifactKey(blocksHash, opts)
	if k.scope == "" {
		return key
	}
	return k.scope + ":" + key
}

var (
	_ Keyer = DefaultKeyer{}
	_ Keyer = ScopedKeyer{}
)
