package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This is useful when one cache backend is shared by multiple projects or
// users and their entries must not collide.
//
// Example usage:
//
//	// Project-specific keys
//	projKeyer := NewScopedKeyer(NewDefaultKeyer(), "proj:abc123:")
//
//	// Shared keys for public machines
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// MachineKey generates a prefixed key for a machine definition.
func (k *ScopedKeyer) MachineKey(source []byte) string {
	return k.prefix + k.inner.MachineKey(source)
}

// LayoutKey generates a prefixed key for computed positions.
func (k *ScopedKeyer) LayoutKey(machineHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(machineHash, opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
