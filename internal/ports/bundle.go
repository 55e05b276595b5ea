package ports

import "slicer-profiles/internal/types"

// BundleSourcePort loads a source configuration bundle into a store.
type BundleSourcePort interface {
	LoadBundle(path string) (*types.Store, error)
}
