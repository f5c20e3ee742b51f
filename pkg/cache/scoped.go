package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation —
// useful when a shared Redis cache serves more than one caller and their
// reductions must not collide.
//
// Example usage:
//
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix prepended to every
// generated key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ReduceKey generates a prefixed key for reduced-graph caching.
func (k *ScopedKeyer) ReduceKey(inputHash string, opts ReduceKeyOpts) string {
	return k.prefix + k.inner.ReduceKey(inputHash, opts)
}

// DotKey generates a prefixed key for rendered DOT/SVG caching.
func (k *ScopedKeyer) DotKey(reducedHash string, opts DotKeyOpts) string {
	return k.prefix + k.inner.DotKey(reducedHash, opts)
}

var _ Keyer = (*ScopedKeyer)(nil)
